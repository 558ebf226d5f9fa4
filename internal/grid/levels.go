package grid

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultLevel is loaded when no level is requested.
const DefaultLevel = "classic"

// ErrUnknownLevel is returned by Level for names not in LevelNames.
var ErrUnknownLevel = errors.New("grid: unknown level")

// levels holds the built-in maps. Each string is one row of constant y.
var levels = map[string][]string{
	"classic": {
		"################",
		"#..............#",
		"#..............#",
		"#..............#",
		"#...#####......#",
		"#...#...#......#",
		"#...#..........#",
		"#...#####......#",
		"#..............#",
		"#..............#",
		"#..............#",
		"#..............#",
		"#..............#",
		"#..............#",
		"#..............#",
		"################",
	},
	"pillar": {
		"########",
		"#......#",
		"#......#",
		"#......#",
		"#......#",
		"#...#..#",
		"#......#",
		"########",
	},
	"room": {
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#.....#..#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	},
}

// Level parses the built-in map registered under name.
func Level(name string) (*Grid, error) {
	rows, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}
	return Parse(rows)
}

// LevelNames lists the built-in maps in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
