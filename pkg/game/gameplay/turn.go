// Package gameplay runs the per-turn pipeline: board update, hazards,
// regions, strategy.
package gameplay

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/devtools"
	"gridbot/pkg/game/entities"
	"gridbot/pkg/game/protocol"
	"gridbot/pkg/game/state"
	"gridbot/pkg/game/strategy"
)

// Options tune the engine
type Options struct {
	MarkEnemies bool             // stamp other players onto the board as obstacles
	Dump        io.Writer        // per-turn board dump, nil to disable
	DumpOptions devtools.Options // rendering of the dump
	Logger      log.FieldLogger  // defaults to the logrus standard logger
}

// Engine owns the board and the agent state for one game
type Engine struct {
	grid    *world.Grid
	regions *world.Regions
	agent   state.Agent
	started bool
	opts    Options
	log     log.FieldLogger
}

// NewEngine creates an engine for the given setup
func NewEngine(setup protocol.Setup, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Engine{
		grid:  world.NewGrid(setup.Height, setup.Width),
		agent: state.NewAgent(setup.MyID, world.Position{}),
		opts:  opts,
		log:   logger.WithField("agent", setup.MyID),
	}
}

// Grid returns the board as of the last turn
func (e *Engine) Grid() *world.Grid {
	return e.grid
}

// Regions returns the region map of the last turn, nil before the first
func (e *Engine) Regions() *world.Regions {
	return e.regions
}

// Agent returns a copy of the agent state
func (e *Engine) Agent() state.Agent {
	return e.agent
}

// Step ingests one snapshot and returns the turn's action
func (e *Engine) Step(snap protocol.Snapshot) (strategy.Action, error) {
	if err := e.updateBoard(snap.Rows); err != nil {
		return strategy.Action{}, err
	}

	players, hazards := entities.Sort(snap.Entities)
	e.locateAgent(players)

	entities.ApplyAll(e.grid, hazards)
	if e.opts.MarkEnemies {
		e.markEnemies(players)
	}
	e.regions = world.ComputeRegions(e.grid)

	agent, action := strategy.Decide(e.agent.NextTurn(), e.grid, e.regions)
	e.agent = agent

	e.log.WithFields(log.Fields{
		"turn":    agent.Turn,
		"pos":     agent.Position.String(),
		"target":  agent.Target.String(),
		"actual":  agent.ActualTarget.String(),
		"mode":    agent.Mode.String(),
		"regions": e.regions.Count(),
		"hazards": len(hazards),
	}).Debug(action.String())

	if e.opts.Dump != nil {
		if err := devtools.DumpTurn(e.opts.Dump, e.grid, e.regions, agent, e.opts.DumpOptions); err != nil {
			e.log.WithError(err).Warn("board dump failed")
		}
	}
	return action, nil
}

func (e *Engine) updateBoard(rows []string) error {
	if uint(len(rows)) != e.grid.Rows() {
		return fmt.Errorf("snapshot has %d rows, want %d", len(rows), e.grid.Rows())
	}
	for i, row := range rows {
		if err := e.grid.ParseRow(i, row); err != nil {
			return err
		}
	}
	e.grid.ResetDanger()
	return nil
}

// locateAgent moves the agent to its reported position. The first sighting
// also anchors the targets there.
func (e *Engine) locateAgent(players []entities.Player) {
	for _, p := range players {
		if p.Owner != e.agent.ID || !e.grid.InBounds(p.Position) {
			continue
		}
		if !e.started {
			e.agent = state.NewAgent(e.agent.ID, p.Position)
			e.started = true
			return
		}
		e.agent = e.agent.MoveTo(p.Position)
		return
	}
	e.log.Warn("agent missing from entity list, keeping last position")
}

func (e *Engine) markEnemies(players []entities.Player) {
	for _, p := range players {
		if p.Owner == e.agent.ID || p.Position == e.agent.Position {
			continue
		}
		e.grid.MarkOccupied(p.Position)
	}
}
