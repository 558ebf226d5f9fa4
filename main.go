package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/render"
)

func main() {
	args, debugToken := splitDebugToken(os.Args[1:])
	// CommandLine exits on a parse error
	_ = flag.CommandLine.Parse(args)
	if flag.NArg() > 0 {
		log.Printf("Ignoring extra arguments: %v", flag.Args())
	}

	mode := render.Normal
	if *debugFlag || debugToken {
		mode = render.Debug
	}

	g, err := newGame(*levelFlag, mode)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoOutputPath)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		g.stopRecording = stop
		g.enableAutoWalk(pgoRecordDuration)
	}

	ebiten.SetWindowSize(int(screenWidth*windowScale), int(screenHeight*windowScale))
	ebiten.SetWindowTitle("Raycaster")
	err = ebiten.RunGame(g)
	if g.stopRecording != nil {
		g.stopRecording()
	}
	if err != nil {
		log.Fatal(err)
	}
}
