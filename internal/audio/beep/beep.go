package beep

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

var (
	initSpeaker sync.Once
	initErr     error
)

// Player decodes mp3, ogg and wav files and plays them on the default
// device, resampled to a single speaker rate.
type Player struct {
	Log *logrus.Logger

	streamer beep.StreamSeekCloser
	format   beep.Format
	playing  atomic.Bool
}

func NewPlayer(log *logrus.Logger) *Player {
	return &Player{Log: log}
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "unable to open %s", file)
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, errors.Errorf("unsupported audio format %s", file)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "unable to decode %s", file)
	}
	return streamer, format, nil
}

func (p *Player) Load(file string) error {
	initSpeaker.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/60))
	})
	if nil != initErr {
		return errors.Wrap(initErr, "unable to open audio device")
	}

	p.Stop()
	streamer, format, err := decode(file)
	if nil != err {
		return err
	}
	p.streamer, p.format = streamer, format
	p.Log.WithFields(logrus.Fields{
		"file":   file,
		"rate":   format.SampleRate,
		"length": format.SampleRate.D(streamer.Len()),
	}).Info("Track loaded")
	return nil
}

func (p *Player) Play() {
	if nil == p.streamer {
		return
	}
	var s beep.Streamer = p.streamer
	if p.format.SampleRate != sampleRate {
		s = beep.Resample(4, p.format.SampleRate, sampleRate, s)
	}
	p.playing.Store(true)
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		p.playing.Store(false)
	})))
}

func (p *Player) Stop() {
	if nil == p.streamer {
		return
	}
	speaker.Clear()
	p.playing.Store(false)
	if err := p.streamer.Close(); nil != err {
		p.Log.WithError(err).Warn("unable to close track")
	}
	p.streamer = nil
}

func (p *Player) IsPlaying() bool {
	return p.playing.Load()
}
