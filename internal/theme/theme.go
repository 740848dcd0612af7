package theme

import "image/color"

type Theme interface {
	GetNoteColor(lane int) color.RGBA
	Background() color.RGBA
	Foreground() color.RGBA
	Warning() color.RGBA
}
