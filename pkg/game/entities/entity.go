// Package entities describes the per-turn entity records (players and
// hazards) and what they do to the board.
package entities

import "gridbot/pkg/engine/world"

// EntityType identifies the kind of an entity record
type EntityType int

const (
	TypePlayer EntityType = 0
	TypeHazard EntityType = 1
)

// Entity is one raw record of the turn's entity list.
// For players Param1 and Param2 are unused; for hazards they hold the
// countdown and the blast range.
type Entity struct {
	Type   EntityType
	Owner  int
	X      int // column
	Y      int // row
	Param1 int
	Param2 int
}

// Position returns the entity position in (row, col) order
func (e Entity) Position() (world.Position, bool) {
	return world.NewPosition(e.Y, e.X)
}

// Player is a player entity
type Player struct {
	Owner    int
	Position world.Position
}

// Sort splits an entity list into players and hazards, preserving list order.
// Records with negative coordinates or unknown types are skipped.
func Sort(list []Entity) ([]Player, []Hazard) {
	var players []Player
	var hazards []Hazard
	for _, e := range list {
		switch e.Type {
		case TypePlayer:
			if p, ok := e.Position(); ok {
				players = append(players, Player{Owner: e.Owner, Position: p})
			}
		case TypeHazard:
			if h, ok := NewHazard(e); ok {
				hazards = append(hazards, h)
			}
		}
	}
	return players, hazards
}
