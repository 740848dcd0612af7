package session

import (
	"sort"

	"git.lost.host/meutraa/tapline/internal/audio"
	"git.lost.host/meutraa/tapline/internal/game"
	"git.lost.host/meutraa/tapline/internal/score"
	"github.com/pkg/errors"
)

var ErrNotReproducible = errors.New("session was not recorded on a tick clock")

// Replay re-runs a recorded session on a tick clock with the field and
// judgement table it was recorded with, and returns its final stats. Only
// opts.Log is taken from the caller. Wall clock recordings are rejected with
// ErrNotReproducible.
func Replay(opts Options, h *score.History) (score.Stats, error) {
	if h.Clock != game.ClockTick {
		return score.Stats{}, errors.Wrapf(ErrNotReproducible, "replay %d uses clock %q", h.ID, h.Clock)
	}
	if h.Field.TPS <= 0 || h.Field.Velocity <= 0 {
		return score.Stats{}, errors.Errorf("replay %d has no usable field", h.ID)
	}
	if err := h.Schedule.Validate(); nil != err {
		return score.Stats{}, errors.Wrapf(err, "replay %d", h.ID)
	}

	clock := game.NewTickClock(h.Field.TPS)
	s, err := New(Options{
		Field:      h.Field,
		Judgements: h.Judgements,
		Clock:      clock,
		Audio:      audio.Silent{},
		Scorer:     &score.DefaultScorer{Judgements: h.Judgements, LineY: h.Field.LineY, Log: opts.Log},
		Log:        opts.Log,
	})
	if nil != err {
		return score.Stats{}, errors.Wrapf(err, "replay %d", h.ID)
	}

	inputs := append([]game.Input(nil), h.Inputs...)
	sort.SliceStable(inputs, func(i, j int) bool { return inputs[i].Tick < inputs[j].Tick })

	s.begin(ModeReplay, h.Track, h.Schedule)
	next := 0
	for s.state == Playing {
		for next < len(inputs) && inputs[next].Tick <= s.ticks {
			s.Click(inputs[next].Point())
			next++
		}
		s.Update()
		clock.Tick()
	}
	return s.Stats(), nil
}
