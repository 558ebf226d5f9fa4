package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycaster/internal/render"
)

// screenSurface adapts an ebiten image to render.Surface.
type screenSurface struct {
	dst *ebiten.Image
}

var _ render.Surface = screenSurface{}

func (s screenSurface) FillRect(x, y, width, height float32, clr color.Color) {
	vector.FillRect(s.dst, x, y, width, height, clr, false)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(s.dst, x0, y0, x1, y1, width, clr, false)
}

// Draw renders the 3D view, the debug overlays and the frame counter.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screenSurface{dst: screen}, g.level, g.player)

	if g.renderer.Mode() == render.Debug {
		cx, cy := g.player.Cell()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("pos %.1f, %.1f\nangle %.3f rad\ncell %d, %d",
			g.player.X, g.player.Y, g.player.Angle, cx, cy))
	}

	if g.showFPS {
		op := &text.DrawOptions{}
		op.GeoM.Translate(screenWidth-fpsMarginX, screenHeight-fpsMarginY)
		op.ColorScale.ScaleWithColor(color.Black)
		op.PrimaryAlign = text.AlignEnd
		text.Draw(screen, fmt.Sprintf("%.0f", ebiten.ActualFPS()), g.fpsFace, op)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenWidth, screenHeight }
