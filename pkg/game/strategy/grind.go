package strategy

import (
	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/state"
)

// Decide runs the agent's strategy for one turn
func Decide(agent state.Agent, g *world.Grid, r *world.Regions) (state.Agent, Action) {
	// Grind is the only strategy so far.
	return Grind(agent, g, r)
}

// Grind walks to the far end of the agent's region, arms placement, places a
// hazard on the next arrival and picks a new far target, while routing around
// dangerous cells.
func Grind(agent state.Agent, g *world.Grid, r *world.Regions) (state.Agent, Action) {
	plant := false

	if agent.Reached() {
		if agent.Mode == state.ModePlant {
			plant = true
		}
		// Both modes end armed.
		agent.Mode = state.ModePlant
		agent.Target = PickNewTarget(g, r, agent.Position)
	}

	agent.Target, agent.ActualTarget = PickSafeActualTarget(g, r, agent.Position, agent.Target)

	action := Action{Kind: ActionMove, Target: agent.ActualTarget}
	if plant {
		action.Kind = ActionBomb
	}
	return agent, action
}
