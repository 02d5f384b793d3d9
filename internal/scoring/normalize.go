package scoring

import "encoding/json"

// answerLabels maps recognized answer strings to the 1–5 scale: agreement
// labels, frequency labels, and letter choices.
var answerLabels = map[string]float64{
	"strongly_disagree": 1,
	"disagree":          2,
	"neutral":           3,
	"agree":             4,
	"strongly_agree":    5,

	"never":     1,
	"rarely":    2,
	"sometimes": 3,
	"often":     4,
	"always":    5,

	"a": 1,
	"b": 2,
	"c": 3,
	"d": 4,
	"e": 5,
}

// Normalize maps a heterogeneous raw answer to the canonical 1–5 scale.
// Numbers are clamped to [1,5]; strings go through the label table; objects
// contribute their "value" or "score" field. Anything unrecognized defaults
// to 3 (neutral) — a deliberate fail-soft policy, since a malformed answer
// should dilute a score, not abort a scoring run. When reverse is true the
// item is reverse-coded: 6 − value. The default is symmetric under reversal
// (6−3 = 3), so unrecognized answers stay neutral either way.
func Normalize(answer any, reverse bool) float64 {
	v := baseValue(answer)
	if reverse {
		return 6 - v
	}
	return v
}

func baseValue(answer any) float64 {
	switch a := answer.(type) {
	case float64:
		return clamp15(a)
	case float32:
		return clamp15(float64(a))
	case int:
		return clamp15(float64(a))
	case int64:
		return clamp15(float64(a))
	case json.Number:
		if f, err := a.Float64(); err == nil {
			return clamp15(f)
		}
		return 3
	case string:
		if v, ok := answerLabels[a]; ok {
			return v
		}
		return 3
	case map[string]any:
		if v, ok := a["value"]; ok {
			return baseValue(v)
		}
		if v, ok := a["score"]; ok {
			return baseValue(v)
		}
		return 3
	default:
		return 3
	}
}

func clamp15(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
