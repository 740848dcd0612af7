package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"git.lost.host/meutraa/tapline/internal/audio/beep"
	"git.lost.host/meutraa/tapline/internal/config"
	"git.lost.host/meutraa/tapline/internal/game"
	ebiteninput "git.lost.host/meutraa/tapline/internal/input/ebiten"
	"git.lost.host/meutraa/tapline/internal/parser"
	"git.lost.host/meutraa/tapline/internal/render"
	"git.lost.host/meutraa/tapline/internal/score"
	"git.lost.host/meutraa/tapline/internal/session"
	"git.lost.host/meutraa/tapline/internal/theme"
	"git.lost.host/meutraa/tapline/internal/tracks"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		logrus.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if nil != err {
		return err
	}

	scorer := &score.DefaultScorer{Judgements: cfg.Judgements, LineY: cfg.LineY, Log: log}
	if cfg.Replays != "" {
		if err := scorer.Init(cfg.Replays); nil != err {
			return err
		}
		defer scorer.Deinit()
	}

	opts := session.Options{
		Field:      cfg.Field(),
		Judgements: cfg.Judgements,
		DemoBPM:    cfg.DemoBPM,
		TrackBPM:   cfg.TrackBPM,
		Parser:     &parser.DefaultParser{},
		Scorer:     scorer,
		Record:     cfg.Replays != "",
		Log:        log,
	}

	switch cfg.Command {
	case config.CommandReplays:
		return replays(scorer, opts)
	default:
		return play(cfg, opts)
	}
}

func play(cfg *config.Config, opts session.Options) error {
	finder := &tracks.DirFinder{Directory: cfg.Directory, Log: opts.Log}
	found, err := finder.Find()
	if nil != err {
		opts.Log.WithError(err).Warn("Unable to list tracks, M is disabled until it can")
	}
	listTracks(found)

	var ticker *game.TickClock
	if cfg.Clock == config.ClockWall {
		opts.Clock = game.NewWallClock()
	} else {
		ticker = game.NewTickClock(cfg.TPS)
		opts.Clock = ticker
	}
	opts.Tracks = finder
	opts.Audio = beep.NewPlayer(opts.Log)

	s, err := session.New(opts)
	if nil != err {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("tapline")
	ebiten.SetTPS(cfg.TPS)

	p := NewProgram(s, render.NewDefaultRenderer(&theme.DefaultTheme{}), ebiteninput.NewSource(), ticker, cfg.Width, cfg.Height)
	if err := ebiten.RunGame(p); nil != err {
		return errors.Wrap(err, "game loop failed")
	}
	opts.Audio.Stop()
	return nil
}

func listTracks(found []tracks.Track) {
	if len(found) == 0 {
		color.New(color.FgYellow).Println("No music files found, M is disabled")
		return
	}
	header := color.New(color.FgCyan, color.Bold)
	header.Println("Tracks")
	for i, t := range found {
		chart := "fixed tempo"
		if t.Chart != "" {
			chart = t.Chart
		}
		fmt.Printf("%2v) %-32v %v\n", i, t.Name(), chart)
	}
}

func replays(scorer *score.DefaultScorer, opts session.Options) error {
	histories, err := scorer.Load()
	if nil != err {
		return err
	}
	if len(histories) == 0 {
		color.New(color.FgYellow).Println("No recorded sessions")
		return nil
	}

	header := color.New(color.FgCyan, color.Bold)
	good := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	header.Printf("%4v  %-6v  %-24v  %6v  %6v  %8v  %5v\n", "id", "mode", "track", "beats", "clicks", "score", "combo")
	for i := range histories {
		h := &histories[i]
		track := h.Track
		if track == "" {
			track = "-"
		}
		stats, err := session.Replay(opts, h)
		if errors.Cause(err) == session.ErrNotReproducible {
			fmt.Printf("%4v  %-6v  %-24v  %6v  %6v  ", h.ID, h.Mode, track, len(h.Schedule), len(h.Inputs))
			warn.Printf("%v clock, not replayable\n", h.Clock)
			continue
		}
		if nil != err {
			opts.Log.WithError(err).WithField("id", h.ID).Warn("Unable to replay")
			continue
		}
		fmt.Printf("%4v  %-6v  %-24v  %6v  %6v  ", h.ID, h.Mode, track, len(h.Schedule), len(h.Inputs))
		good.Printf("%8v  %5v\n", stats.Score, stats.MaxCombo)
	}
	return nil
}
