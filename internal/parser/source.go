package parser

import (
	"git.lost.host/meutraa/tapline/internal/game"
	"github.com/pkg/errors"
)

// ChartSource schedules a session from the first difficulty in a chart file
// that has any notes.
type ChartSource struct {
	Parser Parser
	File   string
}

func (c ChartSource) Schedule() (game.Schedule, error) {
	charts, err := c.Parser.Parse(c.File)
	if nil != err {
		return nil, err
	}
	for _, chart := range charts {
		if len(chart.Schedule) > 0 {
			return chart.Schedule, nil
		}
	}
	return nil, errors.Errorf("no playable difficulty in %s", c.File)
}
