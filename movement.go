package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/pose"
)

// controls selects either keyboard or scripted input for this frame.
func (g *Game) controls() pose.Controls {
	if g.autoWalk {
		return g.autoWalkControls()
	}
	return keyboardControls()
}

// keyboardControls reads the arrow keys, with WASD as an alternative.
func keyboardControls() pose.Controls {
	return pose.Controls{
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Forward:   ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autoWalkFrames = 0
	g.autoWalkLastX, g.autoWalkLastY = g.player.X, g.player.Y
}

// autoWalkControls walks forward with random turns. When the last frame made
// no progress the walker only turns until it faces open space again.
func (g *Game) autoWalkControls() pose.Controls {
	stuck := g.player.X == g.autoWalkLastX && g.player.Y == g.autoWalkLastY
	g.autoWalkLastX, g.autoWalkLastY = g.player.X, g.player.Y

	if g.autoWalkFrames <= 0 || (stuck && g.autoWalkTurn == 0) {
		g.randomizeAutoWalkTurn()
	}
	g.autoWalkFrames--

	c := pose.Controls{Forward: !stuck}
	switch g.autoWalkTurn {
	case pose.TurnLeft:
		c.TurnLeft = true
	case pose.TurnRight:
		c.TurnRight = true
	}
	// resume walking after a short turn so a blocked walker does not spin forever
	if stuck && g.autoWalkFrames%4 == 0 {
		c.Forward = true
	}
	return c
}

// randomizeAutoWalkTurn picks a new turn direction and how long to hold it.
func (g *Game) randomizeAutoWalkTurn() {
	g.autoWalkTurn = pose.Turn(g.autoWalkRand.Intn(3) - 1)
	g.autoWalkFrames = autoWalkMinFrames + g.autoWalkRand.Intn(autoWalkMaxFrames-autoWalkMinFrames)
}
