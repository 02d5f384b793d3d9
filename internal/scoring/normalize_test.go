package scoring

import (
	"math"
	"testing"
)

func TestNormalizeNumeric(t *testing.T) {
	cases := []struct {
		name   string
		answer any
		want   float64
	}{
		{"in range", 4.0, 4},
		{"int in range", 2, 2},
		{"below range clamps", 0.0, 1},
		{"negative clamps", -3.0, 1},
		{"above range clamps", 7.0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.answer, false); got != tc.want {
				t.Errorf("Normalize(%v, false) = %v, want %v", tc.answer, got, tc.want)
			}
		})
	}
}

func TestNormalizeLabels(t *testing.T) {
	cases := []struct {
		answer string
		want   float64
	}{
		{"strongly_disagree", 1},
		{"disagree", 2},
		{"neutral", 3},
		{"agree", 4},
		{"strongly_agree", 5},
		{"never", 1},
		{"sometimes", 3},
		{"always", 5},
		{"a", 1},
		{"c", 3},
		{"e", 5},
		{"no idea what this is", 3}, // fail-soft default
		{"", 3},
	}
	for _, tc := range cases {
		if got := Normalize(tc.answer, false); got != tc.want {
			t.Errorf("Normalize(%q, false) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestNormalizeObject(t *testing.T) {
	if got := Normalize(map[string]any{"value": 4.0}, false); got != 4 {
		t.Errorf("value field: got %v, want 4", got)
	}
	if got := Normalize(map[string]any{"score": 2.0}, false); got != 2 {
		t.Errorf("score field: got %v, want 2", got)
	}
	if got := Normalize(map[string]any{"other": 9}, false); got != 3 {
		t.Errorf("no usable field: got %v, want 3", got)
	}
	if got := Normalize(nil, false); got != 3 {
		t.Errorf("nil answer: got %v, want 3", got)
	}
}

func TestNormalizeReverse(t *testing.T) {
	// For in-range values, reverse must mirror around the midpoint.
	for a := 1.0; a <= 5.0; a += 0.5 {
		fwd := Normalize(a, false)
		rev := Normalize(a, true)
		if math.Abs(rev-(6-fwd)) > 1e-12 {
			t.Errorf("Normalize(%v, true) = %v, want %v", a, rev, 6-fwd)
		}
	}
	// The neutral default is symmetric under reversal.
	if got := Normalize("unrecognized", true); got != 3 {
		t.Errorf("reversed unknown label = %v, want 3", got)
	}
}

func TestNormalizeRange(t *testing.T) {
	answers := []any{-100.0, 0.0, 1.0, 2.5, 5.0, 100.0, "agree", "bogus", nil, map[string]any{"value": 99.0}}
	for _, a := range answers {
		for _, rev := range []bool{false, true} {
			got := Normalize(a, rev)
			if got < 1 || got > 5 {
				t.Errorf("Normalize(%v, %v) = %v outside [1,5]", a, rev, got)
			}
		}
	}
}
