package game

import "time"

// Clock is the timing source for a session. Now must never go backwards.
type Clock interface {
	Now() time.Duration
}

const (
	ClockTick = "tick"
	ClockWall = "wall"
)

// ClockName reports which kind of clock c is. Only tick clocks replay
// exactly.
func ClockName(c Clock) string {
	if _, ok := c.(*TickClock); ok {
		return ClockTick
	}
	return ClockWall
}

type WallClock struct {
	epoch time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{epoch: time.Now()}
}

// Now reads the monotonic reading carried by time.Now.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// TickClock advances by a fixed period every Tick, so time only moves when
// the game loop does.
type TickClock struct {
	tps   int
	ticks uint64
}

func NewTickClock(tps int) *TickClock {
	return &TickClock{tps: tps}
}

func (c *TickClock) Tick() {
	c.ticks++
}

func (c *TickClock) Ticks() uint64 {
	return c.ticks
}

func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(c.tps)
}
