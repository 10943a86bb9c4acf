// Package devtools provides debugging dumps of the bot's view of the board.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/state"
)

var (
	ColorAgent     = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorTarget    = color.Style{color.FgMagenta, color.OpBold}
	ColorDangerous = color.Style{color.FgRed, color.OpBold}
	ColorHazard    = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	ColorWall      = color.Style{color.FgGray}
	ColorCrane     = color.Style{color.FgYellow}
	ColorEnemy     = color.Style{color.FgCyan, color.OpBold}
)

// Options control how a dump is rendered
type Options struct {
	Colorize bool
	Width    int // available columns; the region map goes beside the board when it fits
}

// cellSymbol returns the single-character symbol for a cell with the agent
// and target overlays applied.
func cellSymbol(p world.Position, cell *world.Cell, agent state.Agent) byte {
	switch {
	case p == agent.Position:
		return '@'
	case cell.HazardPresent:
		return 'o'
	case p == agent.ActualTarget:
		return '*'
	case cell.Dangerous && cell.IsFree():
		return '!'
	default:
		return cell.Glyph()
	}
}

func styleFor(sym byte, cell *world.Cell) *color.Style {
	switch sym {
	case '@':
		return &ColorAgent
	case 'o':
		return &ColorHazard
	case '*':
		return &ColorTarget
	case '!':
		return &ColorDangerous
	}
	switch cell.Kind {
	case world.Wall:
		return &ColorWall
	case world.Crane:
		return &ColorCrane
	case world.Enemy:
		return &ColorEnemy
	}
	return nil
}

// boardLines renders the board one string per row
func boardLines(g *world.Grid, agent state.Agent, colorize bool) []string {
	lines := make([]string, 0, g.Rows())
	var b strings.Builder
	g.ForEachCell(func(p world.Position, cell *world.Cell) {
		sym := cellSymbol(p, cell, agent)
		if style := styleFor(sym, cell); colorize && style != nil {
			b.WriteString(style.Sprint(string(sym)))
		} else {
			b.WriteByte(sym)
		}
		if p.Col == g.Cols()-1 {
			lines = append(lines, b.String())
			b.Reset()
		}
	})
	return lines
}

// regionLines renders the region map, blocked cells as '.'
func regionLines(g *world.Grid, r *world.Regions) []string {
	lines := make([]string, 0, g.Rows())
	var b strings.Builder
	g.ForEachCell(func(p world.Position, _ *world.Cell) {
		if id := r.At(p); id == world.Blocked {
			b.WriteString("  .")
		} else {
			fmt.Fprintf(&b, "%3d", id)
		}
		if p.Col == g.Cols()-1 {
			lines = append(lines, b.String())
			b.Reset()
		}
	})
	return lines
}

// DumpTurn writes the agent state, the board and the region map to w.
func DumpTurn(w io.Writer, g *world.Grid, r *world.Regions, agent state.Agent, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s ---\n", gotext.Get("Turn %d", agent.Turn))
	fmt.Fprintf(&b, "position: %s\n", agent.Position)
	fmt.Fprintf(&b, "target: %s\n", agent.Target)
	fmt.Fprintf(&b, "actual_target: %s\n", agent.ActualTarget)
	fmt.Fprintf(&b, "mode: %s\n", agent.Mode)
	fmt.Fprintf(&b, "regions: %d\n", r.Count())
	fmt.Fprintf(&b, "%s\n", gotext.Get("@ = agent  * = target  o = hazard  ! = dangerous  X = wall  0-9 = crane  E = enemy"))

	board := boardLines(g, agent, opts.Colorize)
	field := regionLines(g, r)
	gap := "   "

	if int(g.Cols())+len(gap)+3*int(g.Cols()) <= opts.Width {
		for i := range board {
			b.WriteString(board[i])
			b.WriteString(gap)
			b.WriteString(field[i])
			b.WriteByte('\n')
		}
	} else {
		fmt.Fprintf(&b, "%s:\n", gotext.Get("Board"))
		for _, line := range board {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", gotext.Get("Regions"))
		for _, line := range field {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
