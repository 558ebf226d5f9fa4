// Package render projects ray samples into wall, floor and ceiling strips and
// draws the optional top-down debug view.
package render

import (
	"image/color"

	"raycaster/internal/grid"
	"raycaster/internal/pose"
	"raycaster/internal/raycast"
)

// Surface is the drawing target. Coordinates are pixels with the origin in the
// top-left corner.
type Surface interface {
	FillRect(x, y, width, height float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
}

// Mode is fixed for the lifetime of a Renderer.
type Mode int

const (
	// Normal fills the whole surface with the 3D view.
	Normal Mode = iota
	// Debug draws the 2D map, player and rays on the left half and the 3D view
	// on the right half at half the ray density.
	Debug
)

// String returns "normal" or "debug".
func (m Mode) String() string {
	if m == Debug {
		return "debug"
	}
	return "normal"
}

const (
	playerMarkerSize = 8
	headingLength    = 20
	headingLineWidth = 4
	rayLineWidth     = 2
	mapCellGapPx     = 1
)

// Palette holds the flat colours used for every draw call.
type Palette struct {
	Background     color.RGBA
	VerticalFace   color.RGBA
	HorizontalFace color.RGBA
	Floor          color.RGBA
	Ceiling        color.RGBA
	MapWall        color.RGBA
	MapEmpty       color.RGBA
	Player         color.RGBA
	Heading        color.RGBA
	Ray            color.RGBA
}

// DefaultPalette returns the classic flat colour scheme.
func DefaultPalette() Palette {
	blue := color.RGBA{0, 121, 241, 255}
	return Palette{
		Background:     color.RGBA{130, 130, 130, 255},
		VerticalFace:   color.RGBA{130, 130, 130, 255},
		HorizontalFace: color.RGBA{200, 200, 200, 255},
		Floor:          color.RGBA{127, 106, 79, 255},
		Ceiling:        color.RGBA{102, 191, 255, 255},
		MapWall:        color.RGBA{255, 255, 255, 255},
		MapEmpty:       color.RGBA{0, 0, 0, 255},
		Player:         color.RGBA{200, 122, 255, 255},
		Heading:        blue,
		Ray:            blue,
	}
}

// Config sizes the view. Width and Height are the full surface in pixels;
// SamplesPerDegree is the Normal mode ray density.
type Config struct {
	Width            float64
	Height           float64
	CellSize         float64
	FOV              float64
	SamplesPerDegree float64
	Mode             Mode
	Palette          Palette
}

// Renderer owns the caster for its mode and draws one frame per call.
type Renderer struct {
	cfg    Config
	caster *raycast.Caster

	viewX     float64
	viewWidth float64
}

// New builds a Renderer for cfg. Debug mode halves the ray density and moves
// the 3D view into the right half of the surface.
func New(cfg Config) *Renderer {
	r := &Renderer{cfg: cfg, viewWidth: cfg.Width}
	density := cfg.SamplesPerDegree
	if cfg.Mode == Debug {
		density /= 2
		r.viewX = cfg.Width / 2
		r.viewWidth = cfg.Width / 2
	}
	r.caster = raycast.New(raycast.Config{
		CellSize:         cfg.CellSize,
		FOV:              cfg.FOV,
		SamplesPerDegree: density,
	})
	return r
}

// Mode reports the mode the Renderer was built with.
func (r *Renderer) Mode() Mode { return r.cfg.Mode }

// Columns is the number of rays cast per frame in the current mode.
func (r *Renderer) Columns() int { return r.caster.Columns() }

// Draw casts the view from p and paints the frame onto s. The samples are
// returned for overlays; they are only valid until the next call.
func (r *Renderer) Draw(s Surface, g *grid.Grid, p pose.Pose) []raycast.Sample {
	pal := r.cfg.Palette
	s.FillRect(0, 0, float32(r.cfg.Width), float32(r.cfg.Height), pal.Background)

	samples := r.caster.Cast(g, p)
	if r.cfg.Mode == Debug {
		scale := r.mapScale(g)
		r.drawMap(s, g)
		r.drawPlayer(s, p, scale)
		r.drawRays(s, p, samples, scale)
	}
	r.drawColumns(s, samples)
	return samples
}

// drawColumns paints wall, floor and ceiling for each sample in that order.
func (r *Renderer) drawColumns(s Surface, samples []raycast.Sample) {
	pal := r.cfg.Palette
	h := r.cfg.Height
	cc := r.caster.Config()
	w := ColumnWidth(r.viewWidth, cc.FOV, cc.SamplesPerDegree)
	for i, sm := range samples {
		x := float32(r.viewX + float64(i)*w)
		lineH := 0.0
		if sm.Face != raycast.FaceNone {
			lineH = StripHeight(r.cfg.CellSize, h, sm.Distance)
		}
		top := StripTop(h, lineH)

		if lineH > 0 {
			wall := pal.VerticalFace
			if sm.Face == raycast.FaceHorizontal {
				wall = pal.HorizontalFace
			}
			s.FillRect(x, float32(top), float32(w), float32(lineH), wall)
		}
		s.FillRect(x, float32(top+lineH), float32(w), float32(h-(top+lineH)), pal.Floor)
		s.FillRect(x, 0, float32(w), float32(top), pal.Ceiling)
	}
}

// StripHeight projects a corrected distance to a wall strip height, clamped to
// viewHeight. Non-positive distances give the full height.
func StripHeight(cellSize, viewHeight, distance float64) float64 {
	if distance <= 0 {
		return viewHeight
	}
	lineH := cellSize * viewHeight / distance
	if lineH > viewHeight {
		lineH = viewHeight
	}
	return lineH
}

// StripTop centres a strip of height lineH vertically.
func StripTop(viewHeight, lineH float64) float64 {
	return viewHeight/2 - lineH/2
}

// ColumnWidth is the pixel width of one sample across a view.
func ColumnWidth(viewWidth, fov, samplesPerDegree float64) float64 {
	return viewWidth / (fov * samplesPerDegree)
}
