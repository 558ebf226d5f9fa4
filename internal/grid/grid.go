package grid

import (
	"errors"
	"fmt"
)

// Cell is the content of a single map square.
type Cell uint8

const (
	// Empty is open floor the player can walk through.
	Empty Cell = iota
	// Wall stops rays and movement.
	Wall
	// OutOfBounds is returned for lookups outside the map instead of faulting.
	OutOfBounds
)

// Errors returned by New and Parse.
var (
	ErrEmpty     = errors.New("grid: no cells")
	ErrNotSquare = errors.New("grid: map is not square")
	ErrBadCell   = errors.New("grid: invalid cell value")
)

// Grid is an immutable square map. Cells are stored row-major, so the cell at
// column x and row y lives at y*size+x.
type Grid struct {
	size  int
	cells []Cell
}

// New copies rows into a Grid. Every row must have len(rows) entries and hold
// only Empty or Wall.
func New(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	g := &Grid{size: n, cells: make([]Cell, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), n, ErrNotSquare)
		}
		for x, c := range row {
			if c != Empty && c != Wall {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", x, y, c, ErrBadCell)
			}
			g.cells[y*n+x] = c
		}
	}
	return g, nil
}

// Size reports N for an N×N grid.
func (g *Grid) Size() int { return g.size }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// CellAt returns the cell at (x, y), or OutOfBounds when either index lies
// outside [0, Size()).
func (g *Grid) CellAt(x, y int) Cell {
	if !g.inBounds(x, y) {
		return OutOfBounds
	}
	return g.cells[y*g.size+x]
}

// IsWall reports whether the coordinates reference a wall cell. Lookups outside
// the map count as walls.
func (g *Grid) IsWall(x, y int) bool {
	return g.CellAt(x, y) != Empty
}
