package gameplay

import (
	"bytes"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/entities"
	"gridbot/pkg/game/protocol"
	"gridbot/pkg/game/state"
	"gridbot/pkg/game/strategy"
)

func quietLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func openRows(n int, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return rows
}

func player(owner, row, col int) entities.Entity {
	return entities.Entity{Type: entities.TypePlayer, Owner: owner, X: col, Y: row}
}

func hazard(owner, row, col, countdown, rng int) entities.Entity {
	return entities.Entity{Type: entities.TypeHazard, Owner: owner, X: col, Y: row, Param1: countdown, Param2: rng}
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	opts.Logger = quietLogger()
	return NewEngine(protocol.Setup{Width: 5, Height: 5, MyID: 0}, opts)
}

func TestStep_GrindCycle(t *testing.T) {
	e := newTestEngine(t, Options{})

	// Turn 1: at start, arm and head for the far corner.
	action, err := e.Step(protocol.Snapshot{Rows: openRows(5, 5), Entities: []entities.Entity{player(0, 0, 0)}})
	if err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if action.String() != "MOVE 4 4" {
		t.Errorf("turn 1 = %q, want MOVE 4 4", action.String())
	}
	if e.Agent().Mode != state.ModePlant || e.Agent().Turn != 1 {
		t.Errorf("agent after turn 1 = %+v", e.Agent())
	}

	// Turn 2: arrived, place and turn back.
	action, err = e.Step(protocol.Snapshot{Rows: openRows(5, 5), Entities: []entities.Entity{player(0, 4, 4)}})
	if err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if action.String() != "BOMB 0 0" {
		t.Errorf("turn 2 = %q, want BOMB 0 0", action.String())
	}
}

func TestStep_RecomputesDangerEachTurn(t *testing.T) {
	e := newTestEngine(t, Options{})
	rows := openRows(5, 5)

	if _, err := e.Step(protocol.Snapshot{Rows: rows, Entities: []entities.Entity{player(0, 0, 0), hazard(1, 2, 2, 3, 2)}}); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if c, _ := e.Grid().Get(world.Position{Row: 2, Col: 4}); !c.Dangerous {
		t.Error("(2,4) not dangerous while the hazard is active")
	}
	withHazard := e.Regions()

	if _, err := e.Step(protocol.Snapshot{Rows: rows, Entities: []entities.Entity{player(0, 0, 0)}}); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	e.Grid().ForEachCell(func(p world.Position, cell *world.Cell) {
		if cell.Dangerous || cell.HazardPresent {
			t.Errorf("cell %v still flagged after the hazard is gone", p)
		}
	})
	if e.Regions().Equal(withHazard) {
		t.Error("region map unchanged after the hazard disappeared")
	}
	if e.Regions().Count() != 1 {
		t.Errorf("Count() = %d, want 1", e.Regions().Count())
	}
}

func TestStep_MarksEnemies(t *testing.T) {
	rows := openRows(5, 5)
	snap := protocol.Snapshot{Rows: rows, Entities: []entities.Entity{player(0, 0, 0), player(1, 4, 4)}}

	e := newTestEngine(t, Options{MarkEnemies: true})
	if _, err := e.Step(snap); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if id := e.Regions().At(world.Position{Row: 4, Col: 4}); id != world.Blocked {
		t.Errorf("enemy cell region = %d, want Blocked", id)
	}
	if e.Agent().Target != (world.Position{Row: 3, Col: 4}) {
		t.Errorf("target = %v, want (3,4) next to the enemy", e.Agent().Target)
	}

	e = newTestEngine(t, Options{MarkEnemies: false})
	if _, err := e.Step(snap); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if id := e.Regions().At(world.Position{Row: 4, Col: 4}); id == world.Blocked {
		t.Error("enemy cell blocked with MarkEnemies off")
	}
}

func TestStep_EnemyDoesNotStopBlast(t *testing.T) {
	e := newTestEngine(t, Options{MarkEnemies: true})
	snap := protocol.Snapshot{
		Rows:     openRows(5, 5),
		Entities: []entities.Entity{player(0, 0, 0), player(1, 4, 1), hazard(1, 4, 0, 5, 3)},
	}
	if _, err := e.Step(snap); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if c, _ := e.Grid().Get(world.Position{Row: 4, Col: 3}); !c.Dangerous {
		t.Error("blast stopped at the enemy, want it to pass through")
	}
}

func TestStep_MissingAgentKeepsPosition(t *testing.T) {
	e := newTestEngine(t, Options{})
	if _, err := e.Step(protocol.Snapshot{Rows: openRows(5, 5), Entities: []entities.Entity{player(0, 1, 1)}}); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if _, err := e.Step(protocol.Snapshot{Rows: openRows(5, 5)}); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if e.Agent().Position != (world.Position{Row: 1, Col: 1}) {
		t.Errorf("position = %v, want (1,1)", e.Agent().Position)
	}
}

func TestStep_BadSnapshot(t *testing.T) {
	e := newTestEngine(t, Options{})
	if _, err := e.Step(protocol.Snapshot{Rows: openRows(4, 5)}); err == nil {
		t.Error("Step() with 4 rows = nil error, want error")
	}
	if _, err := e.Step(protocol.Snapshot{Rows: append(openRows(4, 5), "...")}); err == nil {
		t.Error("Step() with short row = nil error, want error")
	}
}

func TestStep_WritesDump(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEngine(t, Options{Dump: &buf})
	action, err := e.Step(protocol.Snapshot{Rows: openRows(5, 5), Entities: []entities.Entity{player(0, 0, 0)}})
	if err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if action.Kind != strategy.ActionMove {
		t.Errorf("action = %v, want MOVE", action.Kind)
	}
	if !strings.Contains(buf.String(), "--- Turn 1 ---") {
		t.Errorf("dump = %q, want turn header", buf.String())
	}
}
