package config

import (
	"time"

	"git.lost.host/meutraa/tapline/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	CommandPlay    = "play"
	CommandReplays = "replays"

	ClockTick = game.ClockTick
	ClockWall = game.ClockWall
)

type Config struct {
	Command string

	Directory  string
	TimeLimit  time.Duration
	DemoBPM    float64
	TrackBPM   float64
	Velocity   float64
	TPS        int
	LineY      float64
	Spacing    float64
	NoteRadius float64
	Width      int
	Height     int
	Clock      string
	Replays    string
	LogLevel   string
	Judgements game.Judgements
	tiersFile  string
}

// Parse reads command line arguments. The judgement table comes from the
// built in defaults unless --judgements names a YAML file.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("tapline", "Click the falling notes as they cross the line.")
	app.Version("0.3.0")
	app.Flag("directory", "Track directory").Default(".").Short('D').StringVar(&c.Directory)
	app.Flag("time-limit", "Session length").Default("30s").Short('t').DurationVar(&c.TimeLimit)
	app.Flag("demo-bpm", "Tempo of the demo").Default("120").Float64Var(&c.DemoBPM)
	app.Flag("track-bpm", "Tempo for tracks without a chart").Default("240").Float64Var(&c.TrackBPM)
	app.Flag("velocity", "Note fall speed in pixels per tick").Default("9").Short('v').Float64Var(&c.Velocity)
	app.Flag("tps", "Simulation ticks per second").Default("60").IntVar(&c.TPS)
	app.Flag("line-y", "Judgement line row").Default("450").Float64Var(&c.LineY)
	app.Flag("spacing", "Pixels between note columns").Default("150").Short('S').Float64Var(&c.Spacing)
	app.Flag("radius", "Note radius").Default("40").Float64Var(&c.NoteRadius)
	app.Flag("width", "Window width").Default("800").IntVar(&c.Width)
	app.Flag("height", "Window height").Default("600").IntVar(&c.Height)
	app.Flag("clock", "Session clock, tick or wall").Default(ClockTick).EnumVar(&c.Clock, ClockTick, ClockWall)
	app.Flag("replays", "Sqlite file to record sessions in").Short('r').StringVar(&c.Replays)
	app.Flag("judgements", "YAML judgement table").Short('j').ExistingFileVar(&c.tiersFile)
	app.Flag("log-level", "Log level").Default("info").Short('l').StringVar(&c.LogLevel)

	app.Command(CommandPlay, "Open the game window.").Default()
	app.Command(CommandReplays, "Re-score recorded sessions.")

	command, err := app.Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = command

	c.Judgements = game.DefaultJudgements
	if c.tiersFile != "" {
		c.Judgements, err = LoadJudgements(c.tiersFile)
		if nil != err {
			return nil, err
		}
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := c.Judgements.Validate(); nil != err {
		return err
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Velocity <= 0 {
		return errors.Errorf("velocity must be positive, got %v", c.Velocity)
	}
	if !(c.NoteRadius > 0) {
		return errors.Errorf("radius must be positive, got %v", c.NoteRadius)
	}
	if !(c.DemoBPM > 0) || !(c.TrackBPM > 0) {
		return errors.Errorf("tempos must be positive, got demo %v and track %v", c.DemoBPM, c.TrackBPM)
	}
	if c.TimeLimit <= 0 {
		return errors.Errorf("time limit must be positive, got %v", c.TimeLimit)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("bad window size %dx%d", c.Width, c.Height)
	}
	if c.Command == CommandReplays && c.Replays == "" {
		return errors.New("replays needs --replays")
	}
	return nil
}

func (c *Config) Field() game.Field {
	f := game.DefaultField
	f.Width, f.Height = c.Width, c.Height
	f.LineY = c.LineY
	f.LaneSpacing = c.Spacing
	f.NoteRadius = c.NoteRadius
	f.SpawnY = -(c.NoteRadius + 20)
	f.Velocity = c.Velocity
	f.TPS = c.TPS
	f.TimeLimit = c.TimeLimit
	return f
}
