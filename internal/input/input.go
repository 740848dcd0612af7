package input

type Kind int

const (
	Quit Kind = iota
	KeyPress
	PointerClick
)

type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyM
	KeyEscape
)

type Event struct {
	Kind Kind
	Key  Key // Set for KeyPress
	X, Y float64
}

// Source delivers the events that arrived since the last Poll, in order.
type Source interface {
	Poll() []Event
}

func Click(x, y float64) Event {
	return Event{Kind: PointerClick, X: x, Y: y}
}

func Press(k Key) Event {
	return Event{Kind: KeyPress, Key: k}
}
