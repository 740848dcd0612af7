package game

import (
	"testing"

	"github.com/pkg/errors"
)

var lookupTests = map[float64]int{
	0:      0,
	19.999: 0,
	20.0:   1,
	39.9:   1,
	40:     2,
	60:     3,
	79.99:  3,
	80:     -1,
	81:     -1,
}

func TestLookup(t *testing.T) {
	for d, expected := range lookupTests {
		i, j := DefaultJudgements.Lookup(d)
		if i != expected {
			t.Errorf("distance %v: expected tier %v, got %v", d, expected, i)
		}
		if (i < 0) != (j == nil) {
			t.Errorf("distance %v: index %v with judgement %v", d, i, j)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultJudgements.Validate(); nil != err {
		t.Fatal(err)
	}

	invalid := []Judgements{
		{},
		{{Threshold: 40}, {Threshold: 20}},
		{{Threshold: 20}, {Threshold: 20}},
		{{Threshold: 0}},
		{{Threshold: 20, Score: -1}},
	}
	for _, js := range invalid {
		err := js.Validate()
		if errors.Cause(err) != ErrInvalidTierTable {
			t.Errorf("%+v: expected invalid tier table, got %v", js, err)
		}
	}
}

func TestWorst(t *testing.T) {
	if w := DefaultJudgements.Worst(); w.Name != "OK" || w.Threshold != 80 {
		t.Errorf("unexpected worst tier %+v", w)
	}
}
