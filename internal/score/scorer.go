package score

import (
	"git.lost.host/meutraa/tapline/internal/game"
)

type Scorer interface {
	Init(file string) error
	Deinit()

	// Judge resolves a click against the active notes, updating stats and
	// returning the notes that remain.
	Judge(stats *Stats, notes []*game.Note, click game.Point) ([]*game.Note, Outcome)

	// Sweep drops notes that fell past the worst tier.
	Sweep(stats *Stats, notes []*game.Note) ([]*game.Note, int)

	// Save the clicks of a finished session
	Save(history *History) error

	// Load every recorded session, oldest first
	Load() ([]History, error)
}

type Kind int

const (
	NoTarget Kind = iota // Click outside every note, free
	Hit
	Miss // Inside a note, outside every tier
)

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "no target"
}

type Outcome struct {
	Kind      Kind
	Tier      int // -1 unless Hit
	Judgement *game.Judgement
	Note      *game.Note
	Distance  float64 // Vertical distance to the judgement line
	Delta     int     // Score added
}

type Stats struct {
	Score    int
	Combo    int
	MaxCombo int
	Counts   []int // Hits per tier
	Misses   int   // Tierless clicks plus notes swept past the line
}

func NewStats(tiers int) Stats {
	return Stats{Counts: make([]int, tiers)}
}

// History is one finished session: the clicks, the schedule they were made
// against and the settings needed to simulate them again.
type History struct {
	ID    int64
	Sum   string
	Mode  string
	Track string
	Clock string // game.ClockTick or game.ClockWall

	Field      game.Field
	Judgements game.Judgements
	Schedule   game.Schedule
	Inputs     []game.Input
}
