// Package world provides the board primitives the bot reasons about:
// cells, positions, the fixed-size grid and its connected regions.
package world

// CellKind is what occupies a cell according to the latest board snapshot
type CellKind int

const (
	Free  CellKind = iota // Walkable, empty floor
	Wall                  // Indestructible obstacle
	Crane                 // Destructible obstacle carrying a value
	Enemy                 // Occupied by an enemy player
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Free:
		return "Free"
	case Wall:
		return "Wall"
	case Crane:
		return "Crane"
	case Enemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Cell is a single board position.
// Kind is rewritten from the snapshot every turn; the danger and hazard
// flags are derived from the active hazards afterwards.
type Cell struct {
	Kind       CellKind
	CraneValue int

	Dangerous       bool
	DangerCountdown int // informational only

	HazardPresent   bool
	HazardCountdown int
}

// ParseCell converts a board glyph into a cell.
// Unknown glyphs are reserved for future entity markers and read as Free.
func ParseCell(c byte) Cell {
	switch {
	case c == '.':
		return Cell{Kind: Free}
	case c == 'X':
		return Cell{Kind: Wall}
	case c >= '0' && c <= '9':
		return Cell{Kind: Crane, CraneValue: int(c - '0')}
	default:
		return Cell{Kind: Free}
	}
}

// Glyph returns the board glyph for the cell, the inverse of ParseCell.
// Enemy cells use 'E' since the snapshot has no glyph for them.
func (c *Cell) Glyph() byte {
	switch c.Kind {
	case Wall:
		return 'X'
	case Crane:
		return byte('0' + c.CraneValue)
	case Enemy:
		return 'E'
	default:
		return '.'
	}
}

// IsFree returns true if the cell kind is Free
func (c *Cell) IsFree() bool {
	return c.Kind == Free
}

// IsTraversable returns true if the cell is Free and not threatened
func (c *Cell) IsTraversable() bool {
	return c.Kind == Free && !c.Dangerous
}

// ClearDanger drops every flag derived from hazards
func (c *Cell) ClearDanger() {
	c.Dangerous = false
	c.DangerCountdown = 0
	c.HazardPresent = false
	c.HazardCountdown = 0
}
