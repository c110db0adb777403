package piece

import "fmt"

const (
	MinSize = 2
	MaxSize = 4
)

// Axis selects the direction an extent is measured along.
type Axis uint8

const (
	// Horizontal measures columns (x).
	Horizontal Axis = iota
	// Vertical measures rows (y).
	Vertical
)

// Shape is a square occupancy grid of size N in [MinSize, MaxSize], stored rows major.
// Shapes are values: assigning one copies the grid.
type Shape struct {
	n     int
	cells [MaxSize][MaxSize]bool
}

// NewShape builds a shape from rows of occupancy flags. The grid must be square, between
// MinSize and MaxSize wide, and contain at least one occupied cell.
func NewShape(rows [][]bool) (Shape, error) {
	n := len(rows)
	for r, row := range rows {
		if len(row) != n {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}
	if n < MinSize || n > MaxSize {
		return Shape{}, fmt.Errorf("%w: %d", ErrShapeSize, n)
	}

	s := Shape{n: n}
	filled := 0
	for r, row := range rows {
		for c, v := range row {
			s.cells[r][c] = v
			if v {
				filled++
			}
		}
	}
	if filled == 0 {
		return Shape{}, ErrEmptyShape
	}
	return s, nil
}

// mustShape parses rows written as strings, '#' marking an occupied cell.
func mustShape(rows ...string) Shape {
	grid := make([][]bool, len(rows))
	for r, row := range rows {
		grid[r] = make([]bool, len(row))
		for c, ch := range row {
			grid[r][c] = ch == '#'
		}
	}
	s, err := NewShape(grid)
	if err != nil {
		panic(err)
	}
	return s
}

// Size is N, the side length of the grid.
func (s Shape) Size() int {
	return s.n
}

// At reports whether the cell at column x, row y of the grid is occupied.
func (s Shape) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.n || y >= s.n {
		return false
	}
	return s.cells[y][x]
}

// Rows returns a copy of the grid as rows of occupancy flags.
func (s Shape) Rows() [][]bool {
	rows := make([][]bool, s.n)
	for r := range rows {
		rows[r] = make([]bool, s.n)
		copy(rows[r], s.cells[r][:s.n])
	}
	return rows
}

// Clockwise returns the grid rotated a quarter turn clockwise.
func (s Shape) Clockwise() Shape {
	out := Shape{n: s.n}
	for r := range s.n {
		for c := range s.n {
			out.cells[c][s.n-1-r] = s.cells[r][c]
		}
	}
	return out
}

// CounterClockwise returns the grid rotated a quarter turn counter-clockwise.
func (s Shape) CounterClockwise() Shape {
	out := Shape{n: s.n}
	for r := range s.n {
		for c := range s.n {
			out.cells[s.n-1-c][r] = s.cells[r][c]
		}
	}
	return out
}

// ExtentMin is the smallest occupied index along axis, or Size() for an empty grid.
func (s Shape) ExtentMin(axis Axis) int {
	lowest := s.n
	for r := range s.n {
		for c := range s.n {
			if !s.cells[r][c] {
				continue
			}
			idx := c
			if axis == Vertical {
				idx = r
			}
			lowest = min(lowest, idx)
		}
	}
	return lowest
}

// ExtentMax is the largest occupied index along axis, or -1 for an empty grid.
func (s Shape) ExtentMax(axis Axis) int {
	highest := -1
	for r := range s.n {
		for c := range s.n {
			if !s.cells[r][c] {
				continue
			}
			idx := c
			if axis == Vertical {
				idx = r
			}
			highest = max(highest, idx)
		}
	}
	return highest
}

func (s Shape) String() string {
	buf := make([]byte, 0, s.n*(s.n+1))
	for r := range s.n {
		if r > 0 {
			buf = append(buf, '/')
		}
		for c := range s.n {
			if s.cells[r][c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
