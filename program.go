package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"git.lost.host/meutraa/tapline/internal/game"
	"git.lost.host/meutraa/tapline/internal/input"
	"git.lost.host/meutraa/tapline/internal/render"
	"git.lost.host/meutraa/tapline/internal/session"
)

// Program owns the collaborators for one window and drives the session once
// per ebiten tick.
type Program struct {
	Session  *session.Session
	Renderer render.Renderer
	Input    input.Source
	Ticker   *game.TickClock // nil when the session runs on the wall clock

	width, height int
	snapshot      session.Snapshot
}

func NewProgram(s *session.Session, r render.Renderer, in input.Source, ticker *game.TickClock, width, height int) *Program {
	return &Program{
		Session:  s,
		Renderer: r,
		Input:    in,
		Ticker:   ticker,
		width:    width,
		height:   height,
		snapshot: s.Snapshot(),
	}
}

// Update handles input, then simulates, then takes the snapshot Draw reads.
func (p *Program) Update() error {
	if nil != p.Ticker {
		p.Ticker.Tick()
	}
	for _, ev := range p.Input.Poll() {
		if ev.Kind == input.Quit || (ev.Kind == input.KeyPress && ev.Key == input.KeyEscape) {
			return ebiten.Termination
		}
		p.Session.Handle(ev)
	}
	p.Session.Update()
	p.snapshot = p.Session.Snapshot()
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.Renderer.Draw(screen, p.snapshot)
}

func (p *Program) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}
