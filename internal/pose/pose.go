package pose

import (
	"math"

	"raycaster/internal/grid"
)

// Turn selects the rotation direction for a single frame.
type Turn int

const (
	TurnLeft  Turn = -1
	TurnRight Turn = 1
)

// Step selects forward or backward travel along the facing direction.
type Step int

const (
	StepBackward Step = -1
	StepForward  Step = 1
)

// Config holds the per-frame motion constants. CellSize must match the value
// the ray caster uses so both agree on which cell a world coordinate is in.
type Config struct {
	CellSize  float64
	TurnStep  float64
	MoveSpeed float64
	Lookahead float64
}

// DefaultConfig mirrors the classic tuning: 64-unit cells, 0.03 rad per frame,
// one unit per frame and a ten unit collision lookahead.
func DefaultConfig() Config {
	return Config{
		CellSize:  64,
		TurnStep:  0.03,
		MoveSpeed: 1,
		Lookahead: 10,
	}
}

// Controls is the input state sampled once per frame. Keys are held, not
// edge-triggered.
type Controls struct {
	TurnLeft  bool
	TurnRight bool
	Forward   bool
	Backward  bool
}

// Pose is the player position in world units and facing angle in radians.
type Pose struct {
	X, Y  float64
	Angle float64
	DirX  float64
	DirY  float64

	cfg Config
}

// New places a player at (x, y) facing angle.
func New(x, y, angle float64, cfg Config) Pose {
	p := Pose{X: x, Y: y, cfg: cfg}
	p.setAngle(angle)
	return p
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// a tiny negative input can round up to exactly 2π
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

func (p *Pose) setAngle(a float64) {
	p.Angle = NormalizeAngle(a)
	p.DirX = math.Cos(p.Angle)
	p.DirY = math.Sin(p.Angle)
}

// Rotate turns the player by one TurnStep. Screen y grows downward, so
// TurnRight increases the angle.
func (p *Pose) Rotate(t Turn) {
	p.setAngle(p.Angle + float64(t)*p.cfg.TurnStep)
}

// Move advances the player one frame along its facing direction. Each axis is
// resolved on its own: the x step is applied only if the cell Lookahead units
// ahead along x is empty, then the y step is checked the same way from the
// updated x. A blocked axis does not stop the other, so the player slides
// along walls.
func (p *Pose) Move(s Step, g *grid.Grid) {
	dx := p.DirX * p.cfg.MoveSpeed * float64(s)
	dy := p.DirY * p.cfg.MoveSpeed * float64(s)

	if dx != 0 && p.walkable(g, p.X+math.Copysign(p.cfg.Lookahead, dx), p.Y) {
		p.X += dx
	}
	if dy != 0 && p.walkable(g, p.X, p.Y+math.Copysign(p.cfg.Lookahead, dy)) {
		p.Y += dy
	}
}

// Update applies one frame of input: rotation first, then movement. Opposing
// keys held together cancel.
func (p *Pose) Update(c Controls, g *grid.Grid) {
	switch {
	case c.TurnRight && !c.TurnLeft:
		p.Rotate(TurnRight)
	case c.TurnLeft && !c.TurnRight:
		p.Rotate(TurnLeft)
	}
	switch {
	case c.Forward && !c.Backward:
		p.Move(StepForward, g)
	case c.Backward && !c.Forward:
		p.Move(StepBackward, g)
	}
}

// Cell reports the grid indices of the player's current position.
func (p *Pose) Cell() (int, int) {
	return CellIndex(p.X, p.cfg.CellSize), CellIndex(p.Y, p.cfg.CellSize)
}

// CellIndex converts a world coordinate to a grid index.
func CellIndex(v, cellSize float64) int {
	return int(math.Floor(v / cellSize))
}

// walkable reports whether (x, y) lies in an empty cell. Points outside the
// grid are never walkable.
func (p *Pose) walkable(g *grid.Grid, x, y float64) bool {
	return g.CellAt(CellIndex(x, p.cfg.CellSize), CellIndex(y, p.cfg.CellSize)) == grid.Empty
}
