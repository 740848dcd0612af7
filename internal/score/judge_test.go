package score

import (
	"testing"

	"git.lost.host/meutraa/tapline/internal/game"
)

func newScorer() *DefaultScorer {
	return &DefaultScorer{Judgements: game.DefaultJudgements, LineY: 450}
}

func note(x, y float64) *game.Note {
	return &game.Note{X: x, Y: y, Radius: 40}
}

type judgeTest struct {
	Y     float64
	Kind  Kind
	Tier  int
	Delta int
}

var judgeTests = []judgeTest{
	{Y: 450, Kind: Hit, Tier: 0, Delta: 310},
	{Y: 469.999, Kind: Hit, Tier: 0, Delta: 310},
	{Y: 470, Kind: Hit, Tier: 1, Delta: 210},
	{Y: 410, Kind: Hit, Tier: 2, Delta: 110},
	{Y: 521, Kind: Hit, Tier: 3, Delta: 60},
	{Y: 531, Kind: Miss, Tier: -1},
	{Y: 300, Kind: Miss, Tier: -1},
}

func TestJudgeTiers(t *testing.T) {
	s := newScorer()
	for _, test := range judgeTests {
		stats := NewStats(len(s.Judgements))
		n := note(400, test.Y)
		notes, out := s.Judge(&stats, []*game.Note{n}, n.Center())
		if out.Kind != test.Kind || out.Tier != test.Tier || out.Delta != test.Delta {
			t.Log("test    ", test)
			t.Log("outcome ", out)
			t.Fail()
			continue
		}
		switch out.Kind {
		case Hit:
			if len(notes) != 0 || stats.Combo != 1 || stats.Score != test.Delta {
				t.Errorf("y=%v: hit left notes=%v combo=%v score=%v", test.Y, len(notes), stats.Combo, stats.Score)
			}
		case Miss:
			if len(notes) != 1 || stats.Combo != 0 || stats.Score != 0 {
				t.Errorf("y=%v: miss left notes=%v combo=%v score=%v", test.Y, len(notes), stats.Combo, stats.Score)
			}
		}
	}
}

func TestJudgeComboAndScore(t *testing.T) {
	s := newScorer()
	stats := NewStats(len(s.Judgements))
	notes := []*game.Note{}
	for i := 0; i < 5; i++ {
		notes = append(notes, note(float64(100*i), 450))
	}

	expectedScore := 0
	for i := 0; i < 5; i++ {
		before := stats.Combo
		var out Outcome
		notes, out = s.Judge(&stats, notes, game.Point{X: float64(100 * i), Y: 450})
		if out.Kind != Hit {
			t.Fatalf("click %v: expected hit, got %v", i, out.Kind)
		}
		if stats.Combo != before+1 {
			t.Errorf("click %v: combo went from %v to %v", i, before, stats.Combo)
		}
		expectedScore += 300 + stats.Combo*10
		if stats.Score != expectedScore {
			t.Errorf("click %v: expected score %v, got %v", i, expectedScore, stats.Score)
		}
		if stats.MaxCombo != stats.Combo {
			t.Errorf("click %v: max combo %v behind combo %v", i, stats.MaxCombo, stats.Combo)
		}
	}
	if stats.Counts[0] != 5 {
		t.Errorf("expected 5 perfects, got %v", stats.Counts[0])
	}
}

func TestJudgeMissResetsCombo(t *testing.T) {
	s := newScorer()
	for _, combo := range []int{0, 1, 7, 250} {
		stats := Stats{Combo: combo, MaxCombo: combo, Score: 1000}
		n := note(400, 200)
		_, out := s.Judge(&stats, []*game.Note{n}, n.Center())
		if out.Kind != Miss || stats.Combo != 0 {
			t.Errorf("combo %v: expected miss and reset, got %v combo=%v", combo, out.Kind, stats.Combo)
		}
		if stats.MaxCombo != combo || stats.Score != 1000 {
			t.Errorf("combo %v: miss changed max combo %v or score %v", combo, stats.MaxCombo, stats.Score)
		}
	}
}

func TestJudgeNoTarget(t *testing.T) {
	s := newScorer()
	stats := Stats{Score: 500, Combo: 3, MaxCombo: 4, Counts: []int{1, 0, 0, 0}}
	a, b := note(250, 450), note(400, 300)
	notes := []*game.Note{a, b}

	for _, click := range []game.Point{{X: 700, Y: 450}, {X: 290, Y: 450}, {X: 0, Y: 0}} {
		after, out := s.Judge(&stats, notes, click)
		if out.Kind != NoTarget || out.Note != nil {
			t.Errorf("click %v: expected no target, got %v", click, out.Kind)
		}
		if len(after) != 2 || after[0] != a || after[1] != b {
			t.Errorf("click %v: notes changed", click)
		}
		if stats.Score != 500 || stats.Combo != 3 || stats.MaxCombo != 4 {
			t.Errorf("click %v: stats changed to %+v", click, stats)
		}
	}

	if _, out := s.Judge(&stats, nil, game.Point{}); out.Kind != NoTarget {
		t.Errorf("empty field: expected no target, got %v", out.Kind)
	}
}

func TestJudgeOverlapFirstInserted(t *testing.T) {
	s := newScorer()
	stats := NewStats(len(s.Judgements))
	// far sits outside every tier but was inserted first
	far := note(400, 370)
	near := note(400, 420)
	click := game.Point{X: 400, Y: 405}

	notes, out := s.Judge(&stats, []*game.Note{far, near}, click)
	if out.Note != far || out.Kind != Miss {
		t.Fatalf("expected first inserted note to be judged, got %+v", out)
	}
	if len(notes) != 2 {
		t.Errorf("miss removed a note")
	}

	first := note(400, 440)
	second := note(400, 450)
	notes, out = s.Judge(&stats, []*game.Note{first, second}, game.Point{X: 400, Y: 450})
	if out.Note != first || out.Kind != Hit {
		t.Fatalf("expected first inserted note to be hit, got %+v", out)
	}
	if len(notes) != 1 || notes[0] != second {
		t.Errorf("expected the second note to remain")
	}
}

func TestSweep(t *testing.T) {
	s := newScorer()
	stats := Stats{Combo: 9, MaxCombo: 9}
	a, b, c, d := note(0, 100), note(0, 531), note(0, 530), note(0, 600)
	notes, missed := s.Sweep(&stats, []*game.Note{a, b, c, d})
	if missed != 2 {
		t.Errorf("expected 2 missed, got %v", missed)
	}
	if len(notes) != 2 || notes[0] != a || notes[1] != c {
		t.Errorf("unexpected notes after sweep: %v", notes)
	}
	if stats.Combo != 0 || stats.MaxCombo != 9 || stats.Misses != 2 {
		t.Errorf("unexpected stats after sweep: %+v", stats)
	}

	stats.Combo = 4
	notes, missed = s.Sweep(&stats, notes)
	if missed != 0 || stats.Combo != 4 || len(notes) != 2 {
		t.Errorf("sweep with nothing past the line changed state: %+v", stats)
	}
}

var result int

func BenchmarkJudge(b *testing.B) {
	s := newScorer()
	notes := make([]*game.Note, 16)
	for i := range notes {
		notes[i] = note(float64(i*60), 450)
	}
	click := game.Point{X: 2000, Y: 2000}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		stats := Stats{}
		_, out := s.Judge(&stats, notes, click)
		result += int(out.Kind)
	}
}
