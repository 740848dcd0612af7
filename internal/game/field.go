package game

import "time"

// Field is the static geometry and motion of the play area, in pixels and
// ticks.
type Field struct {
	Width, Height int
	LineY         float64 // Judgement line
	SpawnY        float64 // Notes start here, above the top edge
	LaneSpacing   float64
	NoteRadius    float64
	Velocity      float64 // Pixels per tick
	TPS           int     // Ticks per second
	Lanes         int     // Number of color slots
	TimeLimit     time.Duration
}

var DefaultField = Field{
	Width:       800,
	Height:      600,
	LineY:       450,
	SpawnY:      -60,
	LaneSpacing: 150,
	NoteRadius:  40,
	Velocity:    9,
	TPS:         60,
	Lanes:       4,
	TimeLimit:   30 * time.Second,
}

// FallTime is how long a note takes from SpawnY to the judgement line.
func (f Field) FallTime() float64 {
	return (f.LineY - f.SpawnY) / (f.Velocity * float64(f.TPS))
}

func (f Field) CenterX() float64 {
	return float64(f.Width / 2)
}
