package game

type Point struct {
	X, Y float64
}

type Note struct {
	Index  int     // Position in the beat schedule
	Lane   int     // Color slot, Index mod len(colors)
	X      float64 // Fixed at spawn
	Y      float64 // Grows by the fall velocity every tick
	Radius float64
	Time   float64 // Scheduled arrival at the judgement line, in seconds
}

// Advance moves the note one tick down the field.
func (note *Note) Advance(velocity float64) {
	note.Y += velocity
}

func (note *Note) Center() Point {
	return Point{X: note.X, Y: note.Y}
}
