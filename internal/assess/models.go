// Package assess is the response-store collaborator around the scoring
// core: it owns raw response sets and persisted results, and orchestrates
// resolve→score→interpret over them. The core packages (ocean, scoring,
// facets, interpret) never import assess; data flows one way into them.
package assess

import (
	"github.com/psymetric/ocean-engine/internal/facets"
	"github.com/psymetric/ocean-engine/internal/scoring"
)

// ResponseSet is one complete assessment submission by one rater about one
// subject. Responses are written once by the assessment-taking flow and
// read-only afterwards; rescoring recomputes fully from them.
type ResponseSet struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessment_id"`
	SubjectID    string             `json:"subject_id"`
	RaterID      string             `json:"rater_id,omitempty"`
	Tier         facets.Tier        `json:"tier,omitempty"`
	Responses    []scoring.Response `json:"responses"`

	// Questions carries per-item metadata (text, domain) so mappings can
	// be generated when the assessment type has no predefined table.
	Questions []scoring.Question `json:"questions,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
}
