package game

import (
	"testing"
	"time"
)

func TestTickClock(t *testing.T) {
	c := NewTickClock(60)
	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if c.Now() != time.Second {
		t.Errorf("expected 1s after 60 ticks, got %v", c.Now())
	}
	if c.Ticks() != 60 {
		t.Errorf("expected 60 ticks, got %v", c.Ticks())
	}
}

func TestWallClockMonotonic(t *testing.T) {
	c := NewWallClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Errorf("clock went backwards: %v then %v", a, b)
	}
}

func TestClockName(t *testing.T) {
	if n := ClockName(NewTickClock(60)); n != ClockTick {
		t.Errorf("expected %v, got %v", ClockTick, n)
	}
	if n := ClockName(NewWallClock()); n != ClockWall {
		t.Errorf("expected %v, got %v", ClockWall, n)
	}
}
