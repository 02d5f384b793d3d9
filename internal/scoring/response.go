// Package scoring implements the trait-path scoring pipeline: answer
// normalization, question→trait mapping resolution, weighted aggregation,
// and norm-referenced percentile/stanine conversion. Everything in this
// package is a pure function of its inputs; shared tables are immutable
// after load, so concurrent scoring needs no locking.
package scoring

// Answer formats. The trait path only needs the raw value; the facet engine
// additionally keys its −3..+3 normalization on the format.
const (
	FormatLikert5 = "likert_5"
	FormatLikert6 = "likert_6"
	FormatBoolean = "boolean"
	FormatChoice  = "multiple_choice"
)

// Response is a single raw answer as supplied by the assessment-taking flow.
// Answer may be a number, a label string, or a structured object carrying a
// "value" or "score" field; the normalizer copes with all three. The engine
// treats responses as read-only.
type Response struct {
	QuestionID string  `json:"question_id"`
	Answer     any     `json:"answer"`
	Format     string  `json:"format,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	LatencyMS  int64   `json:"latency_ms,omitempty"`
}
