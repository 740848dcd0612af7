package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/tapline/internal/session"
)

// Renderer draws a snapshot. It never reaches back into the session.
type Renderer interface {
	Draw(screen *ebiten.Image, snap session.Snapshot)
}
