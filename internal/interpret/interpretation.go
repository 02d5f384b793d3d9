// Package interpret derives narrative and risk readings from computed score
// profiles: strength/challenge statements from stanine bands, the dark-side
// derailer model, emotional-regulation estimates, and the executive and
// team projections. Everything here is a deterministic lookup over score
// values; there is no randomness and no I/O.
package interpret

import (
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// Interpretation is the narrative reading of a trait profile.
type Interpretation struct {
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

type traitTexts struct {
	strength       string
	recommendation string
	challenge      string
}

// Statement tables, keyed per trait. For the four straight traits the
// strength text describes the high pole and the challenge text the low
// pole. Neuroticism is stored already inverted: its strength text describes
// emotional stability (the low pole).
var interpretationTexts = map[ocean.Trait]traitTexts{
	ocean.Openness: {
		strength:       "Strong intellectual curiosity; generates and absorbs novel ideas readily.",
		recommendation: "Channel ideation into a small number of concrete initiatives to keep momentum.",
		challenge:      "Prefers the familiar; may resist new methods and miss emerging opportunities.",
	},
	ocean.Conscientiousness: {
		strength:       "Highly organized and dependable; follows through on commitments.",
		recommendation: "Delegate routine checks so diligence scales beyond personal capacity.",
		challenge:      "Loose planning and follow-through; deadlines and details tend to slip.",
	},
	ocean.Extraversion: {
		strength:       "Energized by people; builds networks and visibility quickly.",
		recommendation: "Reserve deliberate quiet time for deep work between engagements.",
		challenge:      "Low social energy; may under-communicate and stay invisible to stakeholders.",
	},
	ocean.Agreeableness: {
		strength:       "Cooperative and trusted; defuses conflict and builds durable alliances.",
		recommendation: "Practice delivering hard messages early rather than smoothing them over.",
		challenge:      "Skeptical and competitive stance can erode collaboration over time.",
	},
	ocean.Neuroticism: {
		strength:       "Emotionally stable under pressure; recovers quickly from setbacks.",
		recommendation: "Use that stability to anchor others during high-stress periods.",
		challenge:      "Prone to stress reactivity and mood swings; pressure degrades performance.",
	},
}

// Interpret reads the stanine bands of a profile: stanine ≥ 7 on a trait
// yields its strength statement and recommendation, stanine ≤ 3 yields its
// challenge. Neuroticism is inverted — a low stanine is the strength
// (stability), a high stanine the challenge.
func Interpret(d ocean.ScoreDetails) Interpretation {
	var out Interpretation
	for _, t := range ocean.AllTraits {
		st := d.Stanine[t]
		high := st >= 7
		low := st <= 3
		if t == ocean.Neuroticism {
			high, low = low, high
		}
		texts := interpretationTexts[t]
		if high {
			out.Strengths = append(out.Strengths, texts.strength)
			out.Recommendations = append(out.Recommendations, texts.recommendation)
		}
		if low {
			out.Challenges = append(out.Challenges, texts.challenge)
		}
	}
	return out
}
