package session

import (
	"time"

	"git.lost.host/meutraa/tapline/internal/game"
	"git.lost.host/meutraa/tapline/internal/score"
)

// Snapshot is a read-only copy of everything the renderer needs. It is taken
// after all of a tick's mutations.
type Snapshot struct {
	State     State
	Mode      string
	Notes     []game.Note
	Score     int
	Combo     int
	MaxCombo  int
	Remaining time.Duration
	Field     game.Field

	Last   score.Outcome // Most recent Hit or Miss
	Judged uint64        // Count of Hit and Miss outcomes, grows with each new Last
}

func (s *Session) Snapshot() Snapshot {
	notes := make([]game.Note, len(s.notes))
	for i, n := range s.notes {
		notes[i] = *n
	}
	last := s.last
	if nil != last.Note {
		n := *last.Note
		last.Note = &n
	}
	return Snapshot{
		State:     s.state,
		Mode:      s.mode,
		Notes:     notes,
		Score:     s.stats.Score,
		Combo:     s.stats.Combo,
		MaxCombo:  s.stats.MaxCombo,
		Remaining: s.Remaining(),
		Field:     s.opts.Field,
		Last:      last,
		Judged:    s.judged,
	}
}
