package strategy

import (
	"fmt"

	"gridbot/pkg/engine/world"
)

// ActionKind is the command emitted for a turn
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionBomb
)

// String returns the command keyword
func (k ActionKind) String() string {
	switch k {
	case ActionBomb:
		return "BOMB"
	default:
		return "MOVE"
	}
}

// Action is the single decision of a turn. Target is where the agent heads;
// a Bomb action places a hazard on the agent's cell before moving.
type Action struct {
	Kind   ActionKind
	Target world.Position
}

// String renders the command line. Coordinates are written column first.
func (a Action) String() string {
	return fmt.Sprintf("%s %d %d", a.Kind, a.Target.Col, a.Target.Row)
}
