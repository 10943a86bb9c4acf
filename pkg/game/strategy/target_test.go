package strategy

import (
	"testing"

	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/entities"
)

func makeGrid(t *testing.T, rows ...string) *world.Grid {
	t.Helper()
	g := world.NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		if err := g.ParseRow(i, row); err != nil {
			t.Fatalf("ParseRow(%d) = %v", i, err)
		}
	}
	return g
}

func openBoard(t *testing.T) *world.Grid {
	t.Helper()
	return makeGrid(t, ".....", ".....", ".....", ".....", ".....")
}

func pos(row, col uint) world.Position {
	return world.Position{Row: row, Col: col}
}

func TestPickNewTarget_OpenBoard(t *testing.T) {
	g := openBoard(t)
	r := world.ComputeRegions(g)
	if got := PickNewTarget(g, r, pos(0, 0)); got != pos(4, 4) {
		t.Errorf("PickNewTarget((0,0)) = %v, want (4,4)", got)
	}
}

func TestPickNewTarget_RowMajorTieBreak(t *testing.T) {
	g := openBoard(t)
	r := world.ComputeRegions(g)
	// From the centre the four corners tie at distance 4; (0,0) is scanned first.
	if got := PickNewTarget(g, r, pos(2, 2)); got != pos(0, 0) {
		t.Errorf("PickNewTarget((2,2)) = %v, want (0,0)", got)
	}
}

func TestPickNewTarget_StaysInRegion(t *testing.T) {
	g := makeGrid(t,
		".....",
		".....",
		"XXXXX",
		".....",
		".....",
	)
	r := world.ComputeRegions(g)
	got := PickNewTarget(g, r, pos(1, 4))
	if r.At(got) != r.At(pos(1, 4)) {
		t.Errorf("PickNewTarget((1,4)) = %v in region %d, want region %d", got, r.At(got), r.At(pos(1, 4)))
	}
	if got != pos(0, 0) {
		t.Errorf("PickNewTarget((1,4)) = %v, want (0,0)", got)
	}
}

func TestPickNewTarget_SingletonRegion(t *testing.T) {
	g := makeGrid(t,
		".X.",
		"X..",
	)
	r := world.ComputeRegions(g)
	if got := PickNewTarget(g, r, pos(0, 0)); got != pos(0, 0) {
		t.Errorf("PickNewTarget in singleton = %v, want (0,0)", got)
	}
}

func TestPickSafeActualTarget_TargetSafe(t *testing.T) {
	g := openBoard(t)
	r := world.ComputeRegions(g)
	target, actual := PickSafeActualTarget(g, r, pos(0, 0), pos(4, 4))
	if target != pos(4, 4) || actual != pos(4, 4) {
		t.Errorf("PickSafeActualTarget = %v/%v, want (4,4)/(4,4)", target, actual)
	}
}

func TestPickSafeActualTarget_TargetDangerous(t *testing.T) {
	g := openBoard(t)
	entities.Hazard{Origin: pos(4, 4), Countdown: 8, Range: 2}.Apply(g)
	r := world.ComputeRegions(g)

	target, actual := PickSafeActualTarget(g, r, pos(0, 0), pos(4, 4))
	if target != pos(4, 4) {
		t.Errorf("stored target = %v, want unchanged (4,4)", target)
	}
	// (3,3) is the only cell at distance 2 from (4,4) that the blast misses.
	if actual != pos(3, 3) {
		t.Errorf("actual target = %v, want (3,3)", actual)
	}
	if c, _ := g.Get(actual); c.Dangerous {
		t.Errorf("actual target %v is dangerous", actual)
	}
}

func TestPickSafeActualTarget_AgentInDanger(t *testing.T) {
	g := openBoard(t)
	entities.Hazard{Origin: pos(0, 0), Countdown: 8, Range: 1}.Apply(g)
	r := world.ComputeRegions(g)

	target, actual := PickSafeActualTarget(g, r, pos(0, 0), pos(0, 0))
	if target != actual {
		t.Errorf("target %v and actual %v differ, want both redirected", target, actual)
	}
	// (0,2) and (1,1) tie at distance 2; (0,2) comes first in row-major order.
	if actual != pos(0, 2) {
		t.Errorf("actual target = %v, want (0,2)", actual)
	}
}

func TestPickSafeActualTarget_NoSafeCell(t *testing.T) {
	g := makeGrid(t, "X...X")
	entities.Hazard{Origin: pos(0, 2), Countdown: 8, Range: 3}.Apply(g)
	r := world.ComputeRegions(g)

	target, actual := PickSafeActualTarget(g, r, pos(0, 1), pos(0, 3))
	if target != pos(0, 3) || actual != pos(0, 3) {
		t.Errorf("PickSafeActualTarget with no safe cell = %v/%v, want (0,3)/(0,3)", target, actual)
	}
}

func TestPickSafeActualTarget_NeverDangerousWhenSafeExists(t *testing.T) {
	g := makeGrid(t,
		"......",
		".X..X.",
		"......",
		".X..X.",
		"......",
	)
	entities.Hazard{Origin: pos(2, 2), Countdown: 5, Range: 3}.Apply(g)
	entities.Hazard{Origin: pos(0, 5), Countdown: 5, Range: 2}.Apply(g)
	r := world.ComputeRegions(g)

	g.ForEachCell(func(start world.Position, startCell *world.Cell) {
		if !startCell.IsFree() {
			return
		}
		g.ForEachCell(func(target world.Position, _ *world.Cell) {
			_, actual := PickSafeActualTarget(g, r, start, target)
			if c, _ := g.Get(actual); c.Dangerous {
				t.Errorf("start %v target %v: actual %v is dangerous", start, target, actual)
			}
		})
	})
}
