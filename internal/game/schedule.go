package game

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// Schedule holds target arrival times in seconds from session start.
type Schedule []float64

// ScheduleSource produces the beat schedule for a session. A fixed tempo is
// used for the demo and as the fallback for tracks without a chart.
type ScheduleSource interface {
	Schedule() (Schedule, error)
}

// Generate emits floor(duration/interval) beats at i*interval, where the
// interval is 60/bpm seconds.
func Generate(bpm float64, duration time.Duration) Schedule {
	if bpm <= 0 || duration <= 0 {
		return Schedule{}
	}
	interval := 60.0 / bpm
	count := int(math.Floor(duration.Seconds() / interval))
	s := make(Schedule, count)
	for i := range s {
		s[i] = float64(i) * interval
	}
	return s
}

type FixedTempo struct {
	BPM      float64
	Duration time.Duration
}

func (f FixedTempo) Schedule() (Schedule, error) {
	return Generate(f.BPM, f.Duration), nil
}

// NewSchedule copies times into a schedule, rejecting negative, non-finite
// or decreasing entries.
func NewSchedule(times []float64) (Schedule, error) {
	s := make(Schedule, len(times))
	copy(s, times)
	if err := s.Validate(); nil != err {
		return nil, err
	}
	return s, nil
}

func (s Schedule) Validate() error {
	for i, t := range s {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return errors.Errorf("beat %d has bad time %v", i, t)
		}
	}
	if !sort.Float64sAreSorted(s) {
		return errors.New("beat schedule is not in ascending order")
	}
	return nil
}
