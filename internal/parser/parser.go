package parser

import "git.lost.host/meutraa/tapline/internal/game"

type Parser interface {
	Parse(file string) ([]*Chart, error)
}

type Chart struct {
	Difficulty string
	Meter      string
	Keys       uint8
	Schedule   game.Schedule
}

var NKeyMap = map[string]uint8{
	"dance-single": 4,
	"dance-solo":   6,
	"dance-double": 8,
}
