package grid

import "fmt"

// Parse builds a Grid from a text literal, one string per row. '#' and '1' are
// walls; '.', '0' and ' ' are empty.
func Parse(rows []string) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		line := make([]Cell, 0, len(row))
		for x, r := range row {
			switch r {
			case '#', '1':
				line = append(line, Wall)
			case '.', '0', ' ':
				line = append(line, Empty)
			default:
				return nil, fmt.Errorf("rune %q at (%d,%d): %w", r, x, y, ErrBadCell)
			}
		}
		cells[y] = line
	}
	return New(cells)
}
