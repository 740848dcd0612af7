package parser

import (
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/tapline/internal/game"
	"github.com/pkg/errors"
)

type DefaultParser struct{}

type bpm struct {
	StartingBeat float64
	Value        float64
}

type difficulty struct {
	Name    string
	Meter   string
	Section string
	Keys    uint8
}

func (p *DefaultParser) getSecondsPerRow(rates []bpm, currentBeat float64, beatsPerRow float64) (float64, error) {
	sel := 0.0
	for _, rate := range rates {
		if currentBeat >= rate.StartingBeat {
			sel = rate.Value
		} else {
			break
		}
	}
	if sel <= 0 {
		return 0, errors.Errorf("no positive bpm at beat %v", currentBeat)
	}
	return beatsPerRow * 60.0 / sel, nil
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// Only heads and normal notes become beats; mines are never clicked.
func isBeat(ch byte) bool {
	return ch == '1' || ch == '2' || ch == '4'
}

func (p *DefaultParser) Parse(file string) ([]*Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read chart %s", file)
	}
	return p.ParseString(string(data))
}

func (p *DefaultParser) ParseString(data string) ([]*Chart, error) {
	str := strings.ReplaceAll(data, "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		keys, ok := NKeyMap[chartType]
		if !ok {
			continue
		}
		difficulties = append(difficulties, difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Meter:   strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			Section: lines[6],
			Keys:    keys,
		})
	}

	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		if strings.HasPrefix(mdl, "OFFSET:") {
			mdl = strings.TrimPrefix(mdl, "OFFSET:")
			mdl = strings.TrimSuffix(mdl, ";")
			offs, err := strconv.ParseFloat(strings.TrimSpace(mdl), 64)
			if nil != err {
				return nil, errors.Wrap(err, "bad OFFSET")
			}
			offset = -offs
		} else if strings.HasPrefix(mdl, "BPMS:") {
			mdl = strings.TrimPrefix(mdl, "BPMS:")
			mdl = strings.ReplaceAll(mdl, "\n", "")
			for _, pair := range strings.Split(strings.TrimSuffix(mdl, ";"), ",") {
				as := strings.Split(pair, "=")
				if len(as) != 2 {
					return nil, errors.Errorf("bad BPMS entry %q", pair)
				}
				sb, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
				if nil != err {
					return nil, errors.Wrap(err, "bad BPMS beat")
				}
				value, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
				if nil != err {
					return nil, errors.Wrap(err, "bad BPMS value")
				}
				bpms = append(bpms, bpm{StartingBeat: sb, Value: value})
			}
		}
	}

	charts := []*Chart{}
	for _, d := range difficulties {
		schedule, err := p.schedule(d, bpms, offset)
		if nil != err {
			return nil, errors.Wrapf(err, "difficulty %s", d.Name)
		}
		charts = append(charts, &Chart{
			Difficulty: d.Name,
			Meter:      d.Meter,
			Keys:       d.Keys,
			Schedule:   schedule,
		})
	}

	return charts, nil
}

// schedule turns every row holding at least one note into one beat. Rows
// before the music starts are dropped.
func (p *DefaultParser) schedule(d difficulty, bpms []bpm, offset float64) (game.Schedule, error) {
	seconds := offset
	currentBeat := 0.0
	times := []float64{}

	section := d.Section
	if end := strings.Index(section, ";"); end >= 0 {
		section = section[:end]
	}

	for _, block := range strings.Split(section, "\n,") {
		rows := []string{}
		for _, l := range strings.Split(block, "\n") {
			l = strings.TrimSpace(l)
			if strings.HasPrefix(l, "//") || strings.HasPrefix(l, ",") {
				continue
			}
			if len(l) >= int(d.Keys) {
				rows = append(rows, l)
			}
		}
		if len(rows) == 0 {
			continue
		}

		// Beat count is 4 per measure
		beatsPerRow := 4.0 / float64(len(rows))
		for _, row := range rows {
			secondsPerRow, err := p.getSecondsPerRow(bpms, currentBeat, beatsPerRow)
			if nil != err {
				return nil, err
			}
			if strings.IndexFunc(row, func(r rune) bool { return r < 128 && isBeat(byte(r)) }) >= 0 && seconds >= 0 {
				times = append(times, seconds)
			}
			seconds += secondsPerRow
			currentBeat += beatsPerRow
		}
	}

	return game.NewSchedule(times)
}
