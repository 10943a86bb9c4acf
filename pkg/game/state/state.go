// Package state holds the agent state carried from one turn to the next.
package state

import "gridbot/pkg/engine/world"

// Mode is the action mode of the grind strategy
type Mode int

// Action modes
const (
	ModeGoto Mode = iota
	ModePlant
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case ModeGoto:
		return "Goto"
	case ModePlant:
		return "Plant"
	default:
		return "Unknown"
	}
}

// Strategy is the top-level behaviour of the agent.
// Grind is the only one for now.
type Strategy int

const (
	StrategyGrind Strategy = iota
)

// Agent is the controlled player's state. It is passed by value into each
// turn's decision and the updated copy is returned, so there is no shared
// mutable state between turns.
type Agent struct {
	ID       int
	Position world.Position

	// Target is the exploration target; ActualTarget is Target adjusted to
	// stay out of danger and is what the agent moves towards.
	Target       world.Position
	ActualTarget world.Position

	Strategy Strategy
	Mode     Mode

	Turn    int    // turns played
	Version uint64 // bumped on every update
}

// NewAgent creates the agent state at game start. Targets default to the
// starting position.
func NewAgent(id int, start world.Position) Agent {
	return Agent{
		ID:           id,
		Position:     start,
		Target:       start,
		ActualTarget: start,
		Strategy:     StrategyGrind,
		Mode:         ModeGoto,
	}
}

// Reached returns true if the agent stands on its exploration target
func (a Agent) Reached() bool {
	return a.Position == a.Target
}

// MoveTo returns a copy of the agent at a new position
func (a Agent) MoveTo(p world.Position) Agent {
	a.Position = p
	return a
}

// NextTurn returns a copy of the agent with the turn and version advanced
func (a Agent) NextTurn() Agent {
	a.Turn++
	a.Version++
	return a
}
