package config

import (
	"image/color"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/tapline/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type tier struct {
	Name      string  `yaml:"name"`
	Threshold float64 `yaml:"threshold"`
	Score     int     `yaml:"score"`
	Color     string  `yaml:"color"`
}

// LoadJudgements reads a judgement table such as
//
//	- {name: PERFECT, threshold: 20, score: 300, color: "#ffff64"}
//	- {name: GREAT, threshold: 40, score: 200}
//
// Tiers must already be in ascending threshold order.
func LoadJudgements(file string) (game.Judgements, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read %s", file)
	}
	return ParseJudgements(data)
}

func ParseJudgements(data []byte) (game.Judgements, error) {
	var tiers []tier
	if err := yaml.Unmarshal(data, &tiers); nil != err {
		return nil, errors.Wrap(err, "unable to parse judgement table")
	}
	js := make(game.Judgements, 0, len(tiers))
	for _, t := range tiers {
		c, err := parseColor(t.Color)
		if nil != err {
			return nil, errors.Wrapf(err, "tier %s", t.Name)
		}
		js = append(js, game.Judgement{Threshold: t.Threshold, Name: t.Name, Score: t.Score, Color: c})
	}
	if err := js.Validate(); nil != err {
		return nil, err
	}
	return js, nil
}

func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{255, 255, 255, 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if nil != err {
		return color.RGBA{}, errors.Wrapf(err, "bad color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}
