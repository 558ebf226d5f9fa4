package raycast

import (
	"math"

	"raycaster/internal/grid"
)

// axis names the family of grid lines a sweep crosses.
type axis uint8

const (
	// horizontalLines steps y by one cell per iteration.
	horizontalLines axis = iota
	// verticalLines steps x by one cell per iteration.
	verticalLines
)

// degenerateEps treats a direction component this small as zero; sin(π) and
// cos(π/2) are not exactly zero in floating point.
const degenerateEps = 1e-12

type hit struct {
	x, y float64
	dist float64
	ok   bool
}

// sweep walks the ray (cos, sin) from (ox, oy) across successive lines of one
// axis. The major coordinate is the one that advances by a whole cell each
// step; the minor coordinate follows the ray slope. A ray parallel to the
// lines never crosses them and reports no hit.
func (c *Caster) sweep(g *grid.Grid, ox, oy, cos, sin float64, ax axis) hit {
	major, minor, dMajor, dMinor := oy, ox, sin, cos
	if ax == verticalLines {
		major, minor, dMajor, dMinor = ox, oy, cos, sin
	}
	if math.Abs(dMajor) < degenerateEps {
		return hit{}
	}

	cs := c.cfg.CellSize
	limit := float64(g.Size()) * cs
	slope := dMinor / dMajor

	// line is the index of the grid line about to be crossed; the tested cell
	// lies just beyond it in the direction of travel.
	line := int(math.Floor(major / cs))
	dir, beyond := -1, -1
	if dMajor > 0 {
		line++
		dir, beyond = 1, 0
	}

	for depth := c.depth(g); depth > 0; depth-- {
		lineAt := float64(line) * cs
		minorAt := minor + (lineAt-major)*slope

		if minorAt >= 0 && minorAt < limit {
			mi := int(minorAt / cs)
			ma := line + beyond
			cell := g.CellAt(mi, ma)
			if ax == verticalLines {
				cell = g.CellAt(ma, mi)
			}
			if cell == grid.Wall {
				x, y := minorAt, lineAt
				if ax == verticalLines {
					x, y = lineAt, minorAt
				}
				return hit{x: x, y: y, dist: math.Hypot(x-ox, y-oy), ok: true}
			}
		}
		line += dir
	}
	return hit{}
}
