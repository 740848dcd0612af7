package session

import (
	"time"

	"git.lost.host/meutraa/tapline/internal/audio"
	"git.lost.host/meutraa/tapline/internal/game"
	"git.lost.host/meutraa/tapline/internal/input"
	"git.lost.host/meutraa/tapline/internal/parser"
	"git.lost.host/meutraa/tapline/internal/score"
	"git.lost.host/meutraa/tapline/internal/tracks"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type State int

const (
	Menu State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case GameOver:
		return "GAME_OVER"
	}
	return "MENU"
}

const (
	ModeDemo   = "demo"
	ModeTrack  = "track"
	ModeReplay = "replay"
)

var ErrNoAudioAvailable = errors.New("no audio available")

type Options struct {
	Field      game.Field
	Judgements game.Judgements
	DemoBPM    float64 // Fixed tempo for the demo
	TrackBPM   float64 // Fallback tempo for tracks without a chart

	Clock  game.Clock
	Audio  audio.Player
	Tracks tracks.Finder
	Parser parser.Parser
	Scorer score.Scorer
	Record bool // Save each finished session's clicks through Scorer
	Log    *logrus.Logger
}

// Session owns the active notes, the stats and the MENU → PLAYING →
// GAME_OVER flow. All mutation happens inside Handle and Update.
type Session struct {
	opts Options

	state    State
	mode     string
	track    string
	stats    score.Stats
	notes    []*game.Note
	schedule game.Schedule
	spawner  *game.Spawner
	start    time.Duration
	ticks    uint64 // Updates since the session started
	inputs   []game.Input

	last       score.Outcome
	judged     uint64
	trackEnded bool
}

func New(opts Options) (*Session, error) {
	if err := opts.Judgements.Validate(); nil != err {
		return nil, err
	}
	if nil == opts.Clock {
		return nil, errors.New("session needs a clock")
	}
	if nil == opts.Scorer {
		opts.Scorer = &score.DefaultScorer{Judgements: opts.Judgements, LineY: opts.Field.LineY, Log: opts.Log}
	}
	if nil == opts.Audio {
		opts.Audio = audio.Silent{}
	}
	if nil == opts.Parser {
		opts.Parser = &parser.DefaultParser{}
	}
	if nil == opts.Log {
		opts.Log = logrus.StandardLogger()
	}
	s := &Session{opts: opts}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.stats = score.NewStats(len(s.opts.Judgements))
	s.notes = []*game.Note{}
	s.schedule = nil
	s.spawner = nil
	s.inputs = []game.Input{}
	s.ticks = 0
	s.mode, s.track = "", ""
	s.last = score.Outcome{Tier: -1}
	s.judged = 0
	s.trackEnded = false
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Stats() score.Stats {
	stats := s.stats
	stats.Counts = append([]int(nil), s.stats.Counts...)
	return stats
}

// Handle dispatches one input event for the current state. Quit is left to
// the caller.
func (s *Session) Handle(ev input.Event) {
	switch s.state {
	case Menu:
		if ev.Kind != input.KeyPress {
			return
		}
		switch ev.Key {
		case input.KeySpace:
			if err := s.StartDemo(); nil != err {
				s.opts.Log.WithError(err).Error("Unable to start demo")
			}
		case input.KeyM:
			if err := s.StartTrack(); nil != err {
				if errors.Cause(err) == ErrNoAudioAvailable {
					s.opts.Log.Info("No tracks to play, staying in menu")
				} else {
					s.opts.Log.WithError(err).Warn("Unable to start track")
				}
			}
		}
	case Playing:
		if ev.Kind == input.PointerClick {
			s.Click(game.Point{X: ev.X, Y: ev.Y})
		}
	case GameOver:
		if ev.Kind == input.KeyPress && ev.Key == input.KeySpace {
			s.ReturnToMenu()
		}
	}
}

func (s *Session) StartDemo() error {
	if s.state != Menu {
		return errors.Errorf("cannot start from %v", s.state)
	}
	schedule, err := game.FixedTempo{BPM: s.opts.DemoBPM, Duration: s.opts.Field.TimeLimit}.Schedule()
	if nil != err {
		return err
	}
	s.begin(ModeDemo, "", schedule)
	return nil
}

// StartTrack plays the first discovered track, scheduled from its chart when
// it has one and from the fallback tempo otherwise.
func (s *Session) StartTrack() error {
	if s.state != Menu {
		return errors.Errorf("cannot start from %v", s.state)
	}
	if nil == s.opts.Tracks {
		return ErrNoAudioAvailable
	}
	found, err := s.opts.Tracks.Find()
	if nil != err {
		return errors.Wrap(err, "unable to find tracks")
	}
	if len(found) == 0 {
		return ErrNoAudioAvailable
	}
	track := found[0]

	var source game.ScheduleSource = game.FixedTempo{BPM: s.opts.TrackBPM, Duration: s.opts.Field.TimeLimit}
	if track.Chart != "" {
		source = parser.ChartSource{Parser: s.opts.Parser, File: track.Chart}
	}
	schedule, err := source.Schedule()
	if nil != err {
		s.opts.Log.WithError(err).WithField("chart", track.Chart).Warn("Falling back to fixed tempo")
		schedule = game.Generate(s.opts.TrackBPM, s.opts.Field.TimeLimit)
	}

	if err := s.opts.Audio.Load(track.Audio); nil != err {
		return errors.Wrapf(err, "unable to load %s", track.Audio)
	}
	s.begin(ModeTrack, track.Audio, schedule)
	s.opts.Audio.Play()
	return nil
}

func (s *Session) begin(mode, track string, schedule game.Schedule) {
	s.reset()
	s.mode, s.track = mode, track
	s.schedule = schedule
	s.spawner = game.NewSpawner(s.opts.Field, schedule)
	s.start = s.opts.Clock.Now()
	s.state = Playing
	s.opts.Log.WithFields(logrus.Fields{
		"mode":  mode,
		"track": track,
		"beats": len(schedule),
	}).Info("Session started")
}

// Click judges a click against the active notes. Outside PLAYING it does
// nothing and reports NoTarget.
func (s *Session) Click(p game.Point) score.Outcome {
	if s.state != Playing {
		return score.Outcome{Kind: score.NoTarget, Tier: -1}
	}
	s.inputs = append(s.inputs, game.Input{Tick: s.ticks, X: p.X, Y: p.Y})

	var out score.Outcome
	s.notes, out = s.opts.Scorer.Judge(&s.stats, s.notes, p)
	if out.Kind != score.NoTarget {
		s.last = out
		s.judged++
	}
	if out.Kind == score.Miss {
		s.opts.Log.WithField("distance", out.Distance).Debug("miss")
	}
	return out
}

func (s *Session) elapsed() time.Duration {
	return s.opts.Clock.Now() - s.start
}

// Update runs one simulation tick: spawn, advance, sweep, then the time
// limit check.
func (s *Session) Update() {
	if s.state != Playing {
		return
	}

	if n := s.spawner.Spawn(s.elapsed().Seconds()); nil != n {
		s.notes = append(s.notes, n)
	}
	for _, n := range s.notes {
		n.Advance(s.opts.Field.Velocity)
	}
	s.notes, _ = s.opts.Scorer.Sweep(&s.stats, s.notes)
	s.ticks++

	if s.mode == ModeTrack && !s.trackEnded && !s.opts.Audio.IsPlaying() {
		s.trackEnded = true
		s.opts.Log.WithField("elapsed", s.elapsed()).Info("Track ended, playing on until the time limit")
	}
	if s.elapsed() >= s.opts.Field.TimeLimit {
		s.end()
	}
}

func (s *Session) end() {
	s.state = GameOver
	s.opts.Audio.Stop()
	s.opts.Log.WithFields(logrus.Fields{
		"mode":      s.mode,
		"score":     s.stats.Score,
		"max_combo": s.stats.MaxCombo,
		"misses":    s.stats.Misses,
	}).Info("Session over")

	if s.opts.Record && s.mode != ModeReplay {
		h := &score.History{
			Mode:       s.mode,
			Track:      s.track,
			Clock:      game.ClockName(s.opts.Clock),
			Field:      s.opts.Field,
			Judgements: s.opts.Judgements,
			Schedule:   s.schedule,
			Inputs:     s.inputs,
		}
		if err := s.opts.Scorer.Save(h); nil != err {
			s.opts.Log.WithError(err).Warn("Unable to save replay")
		}
	}
}

func (s *Session) ReturnToMenu() {
	if s.state != GameOver {
		return
	}
	s.reset()
	s.state = Menu
}

// Remaining is the time left in the session. The menu shows the full limit.
func (s *Session) Remaining() time.Duration {
	switch s.state {
	case Menu:
		return s.opts.Field.TimeLimit
	case GameOver:
		return 0
	}
	r := s.opts.Field.TimeLimit - s.elapsed()
	if r < 0 {
		return 0
	}
	return r
}
