package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Blocked is the region id of cells that belong to no traversable region:
// obstacles, occupied cells and dangerous cells.
const Blocked = 0

// Regions is a region id per grid cell, laid out like the grid
type Regions struct {
	ids   []int
	rows  uint
	cols  uint
	count int
}

// ComputeRegions partitions the Free, non-dangerous cells of the grid into
// 4-connected regions. The outer scan is row-major and ids are handed out
// from 1 in discovery order, so the result only depends on the grid.
func ComputeRegions(g *Grid) *Regions {
	r := &Regions{
		ids:  make([]int, g.Size()),
		rows: g.rows,
		cols: g.cols,
	}

	seen := make([]bool, g.Size())
	work := stack.New[Position]()
	next := 1

	g.ForEachCell(func(p Position, cell *Cell) {
		if seen[g.index(p)] {
			return
		}
		seen[g.index(p)] = true
		if !cell.IsTraversable() {
			r.ids[g.index(p)] = Blocked
			return
		}

		id := next
		next++
		r.ids[g.index(p)] = id
		work.Push(p)

		for work.Size() > 0 {
			current := work.Pop()
			for _, dir := range AllDirections() {
				n, ok := current.Step(dir, g.rows, g.cols)
				if !ok || seen[g.index(n)] {
					continue
				}
				seen[g.index(n)] = true
				if !g.cells[g.index(n)].IsTraversable() {
					r.ids[g.index(n)] = Blocked
					continue
				}
				r.ids[g.index(n)] = id
				work.Push(n)
			}
		}
	})

	r.count = next - 1
	return r
}

// Count returns the number of regions found
func (r *Regions) Count() int {
	return r.count
}

// At returns the region id at p, or Blocked when p is out of bounds
func (r *Regions) At(p Position) int {
	if p.Row >= r.rows || p.Col >= r.cols {
		return Blocked
	}
	return r.ids[p.Row*r.cols+p.Col]
}

// Size returns the number of cells carrying the given region id
func (r *Regions) Size(id int) int {
	n := 0
	for _, v := range r.ids {
		if v == id {
			n++
		}
	}
	return n
}

// Equal reports whether two region maps assign identical ids everywhere
func (r *Regions) Equal(other *Regions) bool {
	if other == nil || r.rows != other.rows || r.cols != other.cols || r.count != other.count {
		return false
	}
	for i := range r.ids {
		if r.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// Reachable returns the region ids usable by an agent standing at p.
// Normally that is just the region of p. When p itself is blocked (the agent
// stands in a blast zone), the agent may still walk out over Free cells, so
// every region touched by a walk over Free cells from p is returned.
func (r *Regions) Reachable(g *Grid, p Position) mapset.Set[int] {
	result := mapset.New[int]()
	if !g.InBounds(p) {
		return result
	}
	if id := r.At(p); id != Blocked {
		result.Put(id)
		return result
	}

	seen := make([]bool, g.Size())
	work := stack.New[Position]()
	seen[g.index(p)] = true
	work.Push(p)

	for work.Size() > 0 {
		current := work.Pop()
		for _, dir := range AllDirections() {
			n, ok := current.Step(dir, g.rows, g.cols)
			if !ok || seen[g.index(n)] {
				continue
			}
			seen[g.index(n)] = true
			if !g.cells[g.index(n)].IsFree() {
				continue
			}
			if id := r.ids[g.index(n)]; id != Blocked {
				result.Put(id)
				continue
			}
			work.Push(n)
		}
	}
	return result
}
