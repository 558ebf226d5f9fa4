package main

import (
	"flag"

	"raycaster/internal/grid"
)

// Command-line flags. The bare positional argument "debug" is also accepted
// and selects the same view as -debug.
var (
	// debugFlag switches to the 2D map, ray and half-width 3D view.
	debugFlag = flag.Bool("debug", false, "show the top-down map and cast rays next to a half-width 3D view")

	// levelFlag names one of the built-in maps.
	levelFlag = flag.String("level", grid.DefaultLevel, "built-in map to load (classic, pillar, room)")

	// showFPSFlag draws the frame rate in the bottom-right corner. F3 toggles it.
	showFPSFlag = flag.Bool("show-fps", true, "draw the frame rate counter")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)

// splitDebugToken removes every bare "debug" argument so the flag package
// keeps parsing past it. found reports whether one was present.
func splitDebugToken(args []string) (rest []string, found bool) {
	rest = make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "debug" {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, found
}
