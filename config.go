package main

import "time"

// View, motion and tooling constants. cellSize is shared by collision and ray
// casting so both agree on the grid index of a world coordinate.
const (
	screenWidth       = 2048
	screenHeight      = 1024
	windowScale       = 0.5
	cellSize          = 64
	fovDegrees        = 90
	samplesPerDegree  = float64(screenWidth) / fovDegrees
	turnStep          = 0.03
	moveSpeed         = 1
	lookahead         = 10
	startX            = 104
	startY            = 304
	startAngle        = 0
	fpsFontSize       = 30
	fpsMarginX        = 12
	fpsMarginY        = 44
	autoWalkMinFrames = 20
	autoWalkMaxFrames = 70
	pgoRecordDuration = 15 * time.Second
	pgoOutputPath     = "default.pgo"
)
