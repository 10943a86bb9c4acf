package entities

import "gridbot/pkg/engine/world"

// Hazard is a placed device that threatens the cells around it.
// Hazards are rebuilt from the entity list every turn.
type Hazard struct {
	Origin    world.Position
	Owner     int
	Countdown int // turns until it goes off
	Range     int // cells reached along each axis
}

// NewHazard creates a hazard from its entity record
func NewHazard(e Entity) (Hazard, bool) {
	if e.Type != TypeHazard {
		return Hazard{}, false
	}
	origin, ok := e.Position()
	if !ok {
		return Hazard{}, false
	}
	return Hazard{
		Origin:    origin,
		Owner:     e.Owner,
		Countdown: e.Param1,
		Range:     e.Param2,
	}, true
}

// Apply stamps the hazard onto the grid. The origin carries the hazard and is
// dangerous; each cardinal direction is marked for Range steps, stopping after
// the first non-Free cell or at the board edge. Flags are only ever set, so
// overlapping hazards never clear each other.
func (h Hazard) Apply(g *world.Grid) {
	origin, ok := g.Get(h.Origin)
	if !ok {
		return
	}
	origin.HazardPresent = true
	origin.HazardCountdown = h.Countdown
	markDangerous(origin, h.Countdown)

	for _, dir := range world.AllDirections() {
		p := h.Origin
		for step := 0; step < h.Range; step++ {
			next, ok := g.Neighbor(p, dir)
			if !ok {
				break
			}
			p = next
			cell, _ := g.Get(p)
			markDangerous(cell, h.Countdown)
			if !cell.IsFree() {
				break
			}
		}
	}
}

// BlastCells returns the positions Apply would mark, origin first
func (h Hazard) BlastCells(g *world.Grid) []world.Position {
	if !g.InBounds(h.Origin) {
		return nil
	}
	cells := []world.Position{h.Origin}
	for _, dir := range world.AllDirections() {
		p := h.Origin
		for step := 0; step < h.Range; step++ {
			next, ok := g.Neighbor(p, dir)
			if !ok {
				break
			}
			p = next
			cells = append(cells, p)
			if cell, _ := g.Get(p); !cell.IsFree() {
				break
			}
		}
	}
	return cells
}

func markDangerous(c *world.Cell, countdown int) {
	c.Dangerous = true
	c.DangerCountdown = countdown
}

// ApplyAll stamps every hazard in list order
func ApplyAll(g *world.Grid, hazards []Hazard) {
	for _, h := range hazards {
		h.Apply(g)
	}
}
