package grid

import (
	"errors"
	"testing"
)

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Cell
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"ragged", [][]Cell{{Wall, Wall}, {Wall}}, ErrNotSquare},
		{"rectangular", [][]Cell{{Wall, Wall, Wall}, {Wall, Wall, Wall}}, ErrNotSquare},
		{"sentinel in data", [][]Cell{{OutOfBounds}}, ErrBadCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	g, err := Parse([]string{
		"###",
		"#.#",
		"##.",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", g.Size())
	}

	tests := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Wall},
		{1, 1, Empty},
		{2, 2, Empty},
		{1, 2, Wall},
		{-1, 0, OutOfBounds},
		{0, -1, OutOfBounds},
		{3, 0, OutOfBounds},
		{0, 3, OutOfBounds},
	}
	for _, tt := range tests {
		if got := g.CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("CellAt(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	if !g.IsWall(5, 5) {
		t.Error("out-of-bounds cell should count as wall")
	}
	if g.IsWall(1, 1) {
		t.Error("empty cell reported as wall")
	}
}

func TestParseRejectsUnknownRune(t *testing.T) {
	_, err := Parse([]string{"#x", "##"})
	if !errors.Is(err, ErrBadCell) {
		t.Fatalf("Parse() error = %v, want ErrBadCell", err)
	}
}

func TestLevels(t *testing.T) {
	sizes := map[string]int{"classic": 16, "pillar": 8, "room": 10}
	for _, name := range LevelNames() {
		t.Run(name, func(t *testing.T) {
			g, err := Level(name)
			if err != nil {
				t.Fatalf("Level(%q): %v", name, err)
			}
			if want, ok := sizes[name]; ok && g.Size() != want {
				t.Errorf("Size() = %d, want %d", g.Size(), want)
			}
			n := g.Size()
			for i := 0; i < n; i++ {
				if !g.IsWall(i, 0) || !g.IsWall(i, n-1) || !g.IsWall(0, i) || !g.IsWall(n-1, i) {
					t.Fatalf("border not closed at index %d", i)
				}
			}
		})
	}

	if _, err := Level("nope"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Level(nope) error = %v, want ErrUnknownLevel", err)
	}
	if _, err := Level(DefaultLevel); err != nil {
		t.Fatalf("default level: %v", err)
	}
}

// Built-in maps are indexed map[x][y] like the literals they were taken from,
// so the inner block of classic runs along x=4..8 at rows 4 and 7.
func TestLevelOrientation(t *testing.T) {
	tests := []struct {
		level string
		x, y  int
		want  Cell
	}{
		{"classic", 8, 4, Wall},
		{"classic", 4, 8, Empty},
		{"classic", 8, 5, Wall},
		{"classic", 5, 8, Empty},
		{"classic", 8, 6, Empty},
		{"classic", 4, 6, Wall},
		{"pillar", 4, 5, Wall},
		{"pillar", 5, 4, Empty},
		{"room", 6, 5, Wall},
		{"room", 5, 6, Empty},
	}
	for _, tt := range tests {
		g, err := Level(tt.level)
		if err != nil {
			t.Fatalf("Level(%q): %v", tt.level, err)
		}
		if got := g.CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s CellAt(%d,%d) = %d, want %d", tt.level, tt.x, tt.y, got, tt.want)
		}
	}
}
