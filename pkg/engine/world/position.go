package world

import "fmt"

// Position is a row/column pair on the board. Coordinates are unsigned, so
// positions left of or above the board cannot be represented.
type Position struct {
	Row uint
	Col uint
}

// NewPosition builds a position from signed coordinates. It returns false for
// negative input instead of wrapping.
func NewPosition(row, col int) (Position, bool) {
	if row < 0 || col < 0 {
		return Position{}, false
	}
	return Position{Row: uint(row), Col: uint(col)}, true
}

// String renders the position as (row,col)
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbour of p in dir on a rows x cols board. The second
// result is false when the step would leave the board.
func (p Position) Step(dir Direction, rows, cols uint) (Position, bool) {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return p, false
	}
	row, ok := shift(p.Row, dr, rows)
	if !ok {
		return p, false
	}
	col, ok := shift(p.Col, dc, cols)
	if !ok {
		return p, false
	}
	return Position{Row: row, Col: col}, true
}

// shift moves v by one step of d within [0, limit)
func shift(v uint, d int, limit uint) (uint, bool) {
	switch {
	case d < 0:
		if v == 0 {
			return v, false
		}
		return v - 1, true
	case d > 0:
		if v+1 >= limit {
			return v, false
		}
		return v + 1, true
	default:
		return v, v < limit
	}
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(a, b Position) uint {
	return absDiff(a.Row, b.Row) + absDiff(a.Col, b.Col)
}

func absDiff(a, b uint) uint {
	if a > b {
		return a - b
	}
	return b - a
}
