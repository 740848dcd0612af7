package game

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

var ErrInvalidTierTable = errors.New("invalid judgement table")

type Judgement struct {
	Threshold float64 // Pixels from the judgement line, exclusive
	Name      string
	Score     int
	Color     color.RGBA
}

// Judgements is ordered by ascending threshold. The last entry is the worst
// tier still counted as a hit.
type Judgements []Judgement

var DefaultJudgements = Judgements{
	{Threshold: 20, Name: "PERFECT", Score: 300, Color: color.RGBA{255, 255, 100, 255}},
	{Threshold: 40, Name: "GREAT", Score: 200, Color: color.RGBA{100, 255, 100, 255}},
	{Threshold: 60, Name: "GOOD", Score: 100, Color: color.RGBA{100, 150, 255, 255}},
	{Threshold: 80, Name: "OK", Score: 50, Color: color.RGBA{255, 255, 255, 255}},
}

func (js Judgements) Validate() error {
	if len(js) == 0 {
		return errors.Wrap(ErrInvalidTierTable, "no tiers")
	}
	previous := math.Inf(-1)
	for i, j := range js {
		if math.IsNaN(j.Threshold) || j.Threshold <= 0 {
			return errors.Wrapf(ErrInvalidTierTable, "tier %d (%s) has threshold %v", i, j.Name, j.Threshold)
		}
		if j.Threshold <= previous {
			return errors.Wrapf(ErrInvalidTierTable, "tier %d (%s) threshold %v not above %v", i, j.Name, j.Threshold, previous)
		}
		if j.Score < 0 {
			return errors.Wrapf(ErrInvalidTierTable, "tier %d (%s) has negative score", i, j.Name)
		}
		previous = j.Threshold
	}
	return nil
}

// Lookup returns the first tier whose threshold is strictly greater than d,
// or -1 and nil when d is outside every tier.
func (js Judgements) Lookup(d float64) (int, *Judgement) {
	for i := range js {
		if d < js[i].Threshold {
			return i, &js[i]
		}
	}
	return -1, nil
}

func (js Judgements) Worst() Judgement {
	return js[len(js)-1]
}
