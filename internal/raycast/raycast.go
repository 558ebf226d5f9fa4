// Package raycast finds the nearest wall for each screen column by stepping
// rays across grid lines.
package raycast

import (
	"math"

	"raycaster/internal/grid"
	"raycaster/internal/pose"
)

// NoHit is the distance reported when no wall is found within MaxDepth steps.
const NoHit = 1e6

// Face tells which kind of grid boundary a ray stopped on.
type Face uint8

const (
	// FaceNone means the ray left the map or hit nothing within MaxDepth.
	FaceNone Face = iota
	// FaceHorizontal is a wall side lying on a horizontal grid line.
	FaceHorizontal
	// FaceVertical is a wall side lying on a vertical grid line.
	FaceVertical
)

// String names the face for logs and the debug overlay.
func (f Face) String() string {
	switch f {
	case FaceHorizontal:
		return "horizontal"
	case FaceVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Sample is the result for one column.
type Sample struct {
	Angle float64
	// HitX, HitY is the wall intersection in world units. Equal to the ray
	// origin when Face is FaceNone.
	HitX, HitY float64
	// Raw is the Euclidean distance from the player to the hit.
	Raw float64
	// Distance is Raw projected onto the facing direction.
	Distance float64
	Face     Face
}

// Config describes the view cone. FOV is in degrees. MaxDepth caps the number
// of grid lines each sweep crosses; zero means the grid dimension.
type Config struct {
	CellSize         float64
	FOV              float64
	SamplesPerDegree float64
	MaxDepth         int
}

// Caster casts one ray per column. The returned slice from Cast is reused
// between calls.
type Caster struct {
	cfg     Config
	samples []Sample
}

// New returns a Caster for cfg. The sample buffer is allocated on the first
// Cast.
func New(cfg Config) *Caster {
	return &Caster{cfg: cfg}
}

// Config returns the caster configuration.
func (c *Caster) Config() Config { return c.cfg }

// Columns is the number of rays per frame, FOV × SamplesPerDegree.
func (c *Caster) Columns() int {
	n := int(math.Round(c.cfg.FOV * c.cfg.SamplesPerDegree))
	if n < 1 {
		n = 1
	}
	return n
}

func (c *Caster) depth(g *grid.Grid) int {
	if c.cfg.MaxDepth > 0 {
		return c.cfg.MaxDepth
	}
	return g.Size()
}

// Cast sweeps the view cone [Angle − FOV/2, Angle + FOV/2) left to right and
// returns one sample per column.
func (c *Caster) Cast(g *grid.Grid, p pose.Pose) []Sample {
	cols := c.Columns()
	if cap(c.samples) < cols {
		c.samples = make([]Sample, cols)
	}
	c.samples = c.samples[:cols]

	fov := c.cfg.FOV * math.Pi / 180
	step := fov / float64(cols)
	start := p.Angle - fov/2
	for i := range c.samples {
		c.samples[i] = c.CastRay(g, p, pose.NormalizeAngle(start+float64(i)*step))
	}
	return c.samples
}

// CastRay runs both sweeps for a single ray angle and keeps the nearer hit.
func (c *Caster) CastRay(g *grid.Grid, p pose.Pose, angle float64) Sample {
	angle = pose.NormalizeAngle(angle)
	cos, sin := math.Cos(angle), math.Sin(angle)

	h := c.sweep(g, p.X, p.Y, cos, sin, horizontalLines)
	v := c.sweep(g, p.X, p.Y, cos, sin, verticalLines)
	best, face := nearest(h, v)

	s := Sample{Angle: angle, HitX: p.X, HitY: p.Y, Raw: NoHit, Distance: NoHit, Face: face}
	if face == FaceNone {
		return s
	}
	s.HitX, s.HitY = best.x, best.y
	s.Raw = best.dist
	s.Distance = best.dist * math.Abs(math.Cos(p.Angle-angle))
	return s
}

// nearest picks the closer of the two sweeps. Equal distances go to the
// vertical-line hit so a tie never depends on the previous column.
func nearest(h, v hit) (hit, Face) {
	switch {
	case v.ok && (!h.ok || v.dist <= h.dist):
		return v, FaceVertical
	case h.ok:
		return h, FaceHorizontal
	default:
		return hit{}, FaceNone
	}
}
