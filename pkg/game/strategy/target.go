// Package strategy decides what the agent does each turn: where to go and
// when to place a hazard.
package strategy

import (
	"github.com/zyedidia/generic/mapset"

	"gridbot/pkg/engine/world"
)

// PickNewTarget returns the cell of the agent's region farthest from pos by
// Manhattan distance. Ties go to the first cell in row-major order. When no
// other cell qualifies the agent stays where it is.
func PickNewTarget(g *world.Grid, r *world.Regions, pos world.Position) world.Position {
	own := r.Reachable(g, pos)
	best := pos
	var bestDistance uint

	g.ForEachCell(func(p world.Position, cell *world.Cell) {
		if !own.Has(r.At(p)) {
			return
		}
		if d := world.ManhattanDistance(pos, p); d > bestDistance {
			bestDistance = d
			best = p
		}
	})
	return best
}

// PickSafeActualTarget adjusts target so the agent does not walk into danger.
// It returns the (possibly redirected) exploration target and the cell to
// actually move towards:
//   - agent in danger: both become the safe cell of the agent's region nearest to target
//   - target safe: both are target
//   - target in danger: only the actual target moves to the nearest safe cell
//
// With no safe cell available the actual target stays target.
func PickSafeActualTarget(g *world.Grid, r *world.Regions, pos, target world.Position) (world.Position, world.Position) {
	if cell, ok := g.Get(pos); ok && cell.Dangerous {
		if safe, found := nearestSafe(g, r.Reachable(g, pos), r, target); found {
			return safe, safe
		}
		return target, target
	}

	if cell, ok := g.Get(target); ok && !cell.Dangerous {
		return target, target
	}

	if safe, found := nearestSafe(g, r.Reachable(g, pos), r, target); found {
		return target, safe
	}
	return target, target
}

// nearestSafe returns the non-dangerous cell in one of the given regions
// closest to target, first in row-major order on ties.
func nearestSafe(g *world.Grid, own mapset.Set[int], r *world.Regions, target world.Position) (world.Position, bool) {
	var best world.Position
	var bestDistance uint
	found := false

	g.ForEachCell(func(p world.Position, cell *world.Cell) {
		if cell.Dangerous || !own.Has(r.At(p)) {
			return
		}
		d := world.ManhattanDistance(target, p)
		if !found || d < bestDistance {
			best, bestDistance, found = p, d, true
		}
	})
	return best, found
}
