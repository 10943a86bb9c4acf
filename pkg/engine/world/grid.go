package world

import (
	"errors"
	"fmt"
)

// ErrRowOutOfRange is returned when a snapshot row does not fit the grid
var ErrRowOutOfRange = errors.New("row out of range")

// ErrRowWidth is returned when a snapshot row has the wrong number of glyphs
var ErrRowWidth = errors.New("row has wrong width")

// Grid represents the board with row-major cell storage
type Grid struct {
	cells []Cell
	rows  uint
	cols  uint
}

// NewGrid creates a new grid with the given dimensions, all cells Free
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = uint(rows)
	g.cols = uint(cols)
	g.cells = make([]Cell, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() uint {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() uint {
	return g.cols
}

// Size returns the number of cells in the grid
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.Row < g.rows && p.Col < g.cols
}

// index returns the row-major offset of p. Callers must bounds-check first.
func (g *Grid) index(p Position) int {
	return int(p.Row*g.cols + p.Col)
}

// Get returns the cell at the given position, or false if out of bounds
func (g *Grid) Get(p Position) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[g.index(p)], true
}

// Neighbor returns the position adjacent to p in dir, or false at the board edge
func (g *Grid) Neighbor(p Position, dir Direction) (Position, bool) {
	if !g.InBounds(p) {
		return p, false
	}
	return p.Step(dir, g.rows, g.cols)
}

// ParseRow overwrites one row of the grid from its snapshot text.
// All flags on the row are cleared along with the kinds.
func (g *Grid) ParseRow(row int, text string) error {
	if row < 0 || uint(row) >= g.rows {
		return fmt.Errorf("parse row %d: %w", row, ErrRowOutOfRange)
	}
	if uint(len(text)) != g.cols {
		return fmt.Errorf("parse row %d: got %d glyphs, want %d: %w", row, len(text), g.cols, ErrRowWidth)
	}

	offset := row * int(g.cols)
	for col := 0; col < len(text); col++ {
		g.cells[offset+col] = ParseCell(text[col])
	}
	return nil
}

// ResetDanger clears the hazard-derived flags of every cell
func (g *Grid) ResetDanger() {
	for i := range g.cells {
		g.cells[i].ClearDanger()
	}
}

// MarkOccupied flags a Free cell as occupied by an enemy. Returns false if
// the position is out of bounds or the cell is not Free.
func (g *Grid) MarkOccupied(p Position) bool {
	cell, ok := g.Get(p)
	if !ok || cell.Kind != Free {
		return false
	}
	cell.Kind = Enemy
	return true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, cell *Cell)) {
	for row := uint(0); row < g.rows; row++ {
		for col := uint(0); col < g.cols; col++ {
			p := Position{Row: row, Col: col}
			fn(p, &g.cells[g.index(p)])
		}
	}
}

// String renders the grid kinds as snapshot glyphs, one line per row
func (g *Grid) String() string {
	buf := make([]byte, 0, len(g.cells)+int(g.rows))
	for row := uint(0); row < g.rows; row++ {
		for col := uint(0); col < g.cols; col++ {
			buf = append(buf, g.cells[row*g.cols+col].Glyph())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
