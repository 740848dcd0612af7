package game

// Input is a click recorded during a session, keyed by the tick it was
// handled on.
type Input struct {
	Tick uint64
	X, Y float64
}

func (i Input) Point() Point {
	return Point{X: i.X, Y: i.Y}
}
