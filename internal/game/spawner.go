package game

// Spawner walks a schedule and materializes notes a fall time ahead of their
// arrival. The cursor only moves forward.
type Spawner struct {
	field    Field
	schedule Schedule
	cursor   int
}

func NewSpawner(field Field, schedule Schedule) *Spawner {
	return &Spawner{field: field, schedule: schedule}
}

// Spawn returns the next note if it is due at elapsed seconds, or nil.
// At most one note is produced per call; when several beats fall inside one
// tick the rest follow on later ticks.
func (s *Spawner) Spawn(elapsed float64) *Note {
	if s.Done() {
		return nil
	}
	t := s.schedule[s.cursor]
	if elapsed < t-s.field.FallTime() {
		return nil
	}
	idx := s.cursor
	s.cursor++
	lanes := s.field.Lanes
	if lanes <= 0 {
		lanes = 1
	}
	return &Note{
		Index:  idx,
		Lane:   idx % lanes,
		X:      s.field.CenterX() + float64(idx%3-1)*s.field.LaneSpacing,
		Y:      s.field.SpawnY,
		Radius: s.field.NoteRadius,
		Time:   t,
	}
}

func (s *Spawner) Cursor() int {
	return s.cursor
}

func (s *Spawner) Done() bool {
	return s.cursor >= len(s.schedule)
}
