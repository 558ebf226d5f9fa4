package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"raycaster/internal/grid"
	"raycaster/internal/pose"
	"raycaster/internal/render"
)

var errStartBlocked = errors.New("start position is inside a wall")

// Game ties the map, the player and the renderer to the ebiten frame loop.
type Game struct {
	level    *grid.Grid
	player   pose.Pose
	renderer *render.Renderer

	showFPS bool
	fpsFace *text.GoTextFace

	autoWalk         bool
	autoWalkDeadline time.Time
	autoWalkRand     *rand.Rand
	autoWalkTurn     pose.Turn
	autoWalkFrames   int
	autoWalkLastX    float64
	autoWalkLastY    float64

	stopRecording func()
}

// newGame loads the named level and prepares a renderer for mode.
func newGame(levelName string, mode render.Mode) (*Game, error) {
	level, err := grid.Level(levelName)
	if err != nil {
		return nil, err
	}

	cfg := pose.Config{
		CellSize:  cellSize,
		TurnStep:  turnStep,
		MoveSpeed: moveSpeed,
		Lookahead: lookahead,
	}
	player := pose.New(startX, startY, startAngle, cfg)
	if cx, cy := player.Cell(); level.IsWall(cx, cy) {
		return nil, fmt.Errorf("level %q cell (%d,%d): %w", levelName, cx, cy, errStartBlocked)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		level:  level,
		player: player,
		renderer: render.New(render.Config{
			Width:            screenWidth,
			Height:           screenHeight,
			CellSize:         cellSize,
			FOV:              fovDegrees,
			SamplesPerDegree: samplesPerDegree,
			Mode:             mode,
			Palette:          render.DefaultPalette(),
		}),
		showFPS:      *showFPSFlag,
		fpsFace:      &text.GoTextFace{Source: src, Size: fpsFontSize},
		autoWalkRand: rand.New(rand.NewSource(time.Now().UnixNano() + 2)),
	}
	log.Printf("Loaded level %q (%dx%d), %s view, %d rays per frame",
		levelName, level.Size(), level.Size(), mode, g.renderer.Columns())
	return g, nil
}

// Update applies one frame of input to the player pose.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}

	if g.autoWalk && time.Now().After(g.autoWalkDeadline) {
		g.autoWalk = false
		if g.stopRecording != nil {
			g.stopRecording()
			return ebiten.Termination
		}
	}

	g.player.Update(g.controls(), g.level)
	return nil
}
