package theme

import "image/color"

type DefaultTheme struct{}

var (
	background = color.RGBA{20, 20, 40, 255}
	white      = color.RGBA{255, 255, 255, 255}
	red        = color.RGBA{255, 100, 100, 255}
	noteColors = [...]color.RGBA{
		red,
		{100, 150, 255, 255}, // blue
		{100, 255, 100, 255}, // green
		{255, 255, 100, 255}, // yellow
	}
)

func (t *DefaultTheme) GetNoteColor(lane int) color.RGBA {
	if lane < 0 {
		lane = -lane
	}
	return noteColors[lane%len(noteColors)]
}

func (t *DefaultTheme) Background() color.RGBA { return background }
func (t *DefaultTheme) Foreground() color.RGBA { return white }

// Warning colors the clock in the last seconds of a session.
func (t *DefaultTheme) Warning() color.RGBA { return red }
