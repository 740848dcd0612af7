package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"git.lost.host/meutraa/tapline/internal/score"
	"git.lost.host/meutraa/tapline/internal/session"
	"git.lost.host/meutraa/tapline/internal/theme"
)

const (
	charWidth, charHeight = 6, 16
	splashFrames          = 24
	warnAt                = 5 * time.Second
)

type DefaultRenderer struct {
	Theme theme.Theme

	decorations []*decoration
	judged      uint64
	scratch     *ebiten.Image
}

type decoration struct {
	X, Y    float64
	Content string
	Color   color.RGBA
	Frames  int // remaining frames until removed
}

func NewDefaultRenderer(th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{Theme: th}
}

func (r *DefaultRenderer) Draw(screen *ebiten.Image, snap session.Snapshot) {
	screen.Fill(r.Theme.Background())
	w, h := float64(snap.Field.Width), float64(snap.Field.Height)

	switch snap.State {
	case session.Menu:
		r.decorations = r.decorations[:0]
		r.judged = 0
		r.text(screen, "SPACE: DEMO / M: Start with a music", 180, h/2, r.Theme.Foreground(), 1)
	case session.Playing:
		r.drawField(screen, snap, w)
	case session.GameOver:
		r.drawGameOver(screen, snap, w, h)
	}
}

func (r *DefaultRenderer) drawField(screen *ebiten.Image, snap session.Snapshot, w float64) {
	fg := r.Theme.Foreground()
	lineY := float32(snap.Field.LineY)
	vector.StrokeLine(screen, 0, lineY, float32(w), lineY, 3, fg, true)

	for _, n := range snap.Notes {
		x, y, radius := float32(n.X), float32(n.Y), float32(n.Radius)
		vector.DrawFilledCircle(screen, x, y, radius, r.Theme.GetNoteColor(n.Lane), true)
		vector.StrokeCircle(screen, x, y, radius, 4, fg, true)
	}

	if snap.Judged > r.judged {
		r.judged = snap.Judged
		r.addSplash(snap.Last)
	}
	r.tickDecorations(screen)

	r.text(screen, fmt.Sprintf("Score: %d  Combo: %d", snap.Score, snap.Combo), 20, 20, fg, 1)
	clock := fg
	if snap.Remaining <= warnAt {
		clock = r.Theme.Warning()
	}
	r.text(screen, fmt.Sprintf("Time: %.1fs", snap.Remaining.Seconds()), w-200, 20, clock, 1)
}

func (r *DefaultRenderer) addSplash(out score.Outcome) {
	if nil == out.Note {
		return
	}
	d := &decoration{
		X:      out.Note.X,
		Y:      out.Note.Y - out.Note.Radius - charHeight,
		Frames: splashFrames,
	}
	switch out.Kind {
	case score.Hit:
		d.Content = out.Judgement.Name
		d.Color = out.Judgement.Color
	case score.Miss:
		d.Content = "MISS"
		d.Color = r.Theme.Warning()
	default:
		return
	}
	d.X -= float64(len(d.Content)*charWidth) / 2
	r.decorations = append(r.decorations, d)
}

func (r *DefaultRenderer) tickDecorations(screen *ebiten.Image) {
	nd := r.decorations[:0]
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.text(screen, d.Content, d.X, d.Y, d.Color, float32(d.Frames)/splashFrames)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

func (r *DefaultRenderer) drawGameOver(screen *ebiten.Image, snap session.Snapshot, w, h float64) {
	fg := r.Theme.Foreground()
	center := func(s string, y float64, c color.RGBA) {
		r.text(screen, s, w/2-float64(len(s)*charWidth)/2, y, c, 1)
	}
	highlight := r.Theme.GetNoteColor(3)
	center("GAME OVER", h/2-120, fg)
	center(fmt.Sprintf("Final Score: %d", snap.Score), h/2-40, highlight)
	center(fmt.Sprintf("Max Combo: %d", snap.MaxCombo), h/2+10, highlight)
	center("Press SPACE to return to menu", h/2+110, fg)
}

// text draws debug-font text tinted with c. The debug font only draws white,
// so it goes through a scratch image and a color scale.
func (r *DefaultRenderer) text(screen *ebiten.Image, s string, x, y float64, c color.RGBA, alpha float32) {
	width := len(s)*charWidth + 2
	if nil == r.scratch || r.scratch.Bounds().Dx() < width {
		if nil != r.scratch {
			r.scratch.Deallocate()
		}
		r.scratch = ebiten.NewImage(width, charHeight)
	}
	r.scratch.Clear()
	ebitenutil.DebugPrint(r.scratch, s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(r.scratch, op)
}
