// Package protocol reads the referee's setup and turn snapshots and writes
// the bot's commands. It only validates shape and bounds; all decisions are
// made elsewhere.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gridbot/pkg/game/entities"
	"gridbot/pkg/game/strategy"
)

// ErrMalformedRow is returned when a board row has the wrong width
var ErrMalformedRow = errors.New("malformed board row")

// ErrOutOfBounds is returned when an entity lies outside the board
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// ErrBadSetup is returned for non-positive board dimensions
var ErrBadSetup = errors.New("invalid setup")

// Setup is the one-off game header
type Setup struct {
	Width  int
	Height int
	MyID   int
}

// Snapshot is everything the referee sends for one turn
type Snapshot struct {
	Rows     []string
	Entities []entities.Entity
}

// Reader decodes referee input
type Reader struct {
	in *bufio.Reader
}

// NewReader wraps r for referee input
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// ReadSetup reads "width height myId"
func (r *Reader) ReadSetup() (Setup, error) {
	var s Setup
	if _, err := fmt.Fscan(r.in, &s.Width, &s.Height, &s.MyID); err != nil {
		return s, fmt.Errorf("read setup: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("read setup: board %dx%d: %w", s.Width, s.Height, ErrBadSetup)
	}
	return s, nil
}

// ReadTurn reads height board rows followed by the entity list
func (r *Reader) ReadTurn(s Setup) (Snapshot, error) {
	snap := Snapshot{Rows: make([]string, 0, s.Height)}

	for i := 0; i < s.Height; i++ {
		var row string
		if _, err := fmt.Fscan(r.in, &row); err != nil {
			return snap, fmt.Errorf("read row %d: %w", i, err)
		}
		if len(row) != s.Width {
			return snap, fmt.Errorf("read row %d: %d glyphs, want %d: %w", i, len(row), s.Width, ErrMalformedRow)
		}
		snap.Rows = append(snap.Rows, row)
	}

	var count int
	if _, err := fmt.Fscan(r.in, &count); err != nil {
		return snap, fmt.Errorf("read entity count: %w", err)
	}

	snap.Entities = make([]entities.Entity, 0, count)
	for i := 0; i < count; i++ {
		var e entities.Entity
		var kind int
		if _, err := fmt.Fscan(r.in, &kind, &e.Owner, &e.X, &e.Y, &e.Param1, &e.Param2); err != nil {
			return snap, fmt.Errorf("read entity %d: %w", i, err)
		}
		e.Type = entities.EntityType(kind)
		if e.X < 0 || e.Y < 0 || e.X >= s.Width || e.Y >= s.Height {
			return snap, fmt.Errorf("read entity %d at (%d,%d): %w", i, e.X, e.Y, ErrOutOfBounds)
		}
		snap.Entities = append(snap.Entities, e)
	}
	return snap, nil
}

// WriteAction writes the turn's command line
func WriteAction(w io.Writer, a strategy.Action) error {
	_, err := fmt.Fprintln(w, a.String())
	return err
}
