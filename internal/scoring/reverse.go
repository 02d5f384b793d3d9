package scoring

import "regexp"

// ReverseScoreDetector decides whether a question's wording indicates the
// low pole of its trait, i.e. the item should be reverse-coded. Detection is
// inherently approximate; keeping it behind an interface lets a table-driven
// or learned detector replace the regex heuristic without touching the
// resolver.
type ReverseScoreDetector interface {
	IsReverse(questionText string) bool
}

// regexDetector matches low-trait indicator language: calm/relaxed wording
// (low neuroticism), traditional/conventional (low openness), quiet/reserved
// (low extraversion), competitive/critical (low agreeableness), and
// flexible/spontaneous (low conscientiousness).
type regexDetector struct {
	patterns []*regexp.Regexp
}

// NewRegexReverseDetector returns the built-in heuristic detector.
func NewRegexReverseDetector() ReverseScoreDetector {
	return &regexDetector{patterns: reversePatterns}
}

var reversePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(calm|relaxed|at ease|seldom worr|rarely anxious)`),
	regexp.MustCompile(`(?i)\b(traditional|conventional|prefer routine|dislike change)`),
	regexp.MustCompile(`(?i)\b(quiet|reserved|keep to (myself|themselves)|avoid crowds)`),
	regexp.MustCompile(`(?i)\b(competitive|critical of others|find fault|argue)`),
	regexp.MustCompile(`(?i)\b(flexible|spontaneous|disorganized|leave things unfinished)`),
}

func (d *regexDetector) IsReverse(questionText string) bool {
	for _, p := range d.patterns {
		if p.MatchString(questionText) {
			return true
		}
	}
	return false
}
