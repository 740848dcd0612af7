package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"git.lost.host/meutraa/tapline/internal/input"
)

// Source reads edge-triggered keyboard and mouse input from ebiten. It must
// be polled from the game's Update.
type Source struct {
	keys []ebiten.Key
}

// NewSource creates an input source and takes over window closing so it can
// be reported as a Quit event.
func NewSource() *Source {
	ebiten.SetWindowClosingHandled(true)
	return &Source{}
}

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeySpace:  input.KeySpace,
	ebiten.KeyM:      input.KeyM,
	ebiten.KeyEscape: input.KeyEscape,
}

func (s *Source) Poll() []input.Event {
	events := []input.Event{}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Event{Kind: input.Quit})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		key, ok := keyMap[k]
		if !ok {
			key = input.KeyUnknown
		}
		events = append(events, input.Press(key))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, input.Click(float64(x), float64(y)))
	}
	return events
}
