package assess

import (
	"context"
	"errors"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

// ErrNotFound is returned for unknown response-set or result IDs.
var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator contract: it supplies raw response
// sets and accepts computed score details. The engine does not assume any
// particular storage technology; both an in-memory and a SQL implementation
// satisfy this interface.
type Store interface {
	PutResponseSet(ctx context.Context, rs ResponseSet) error
	GetResponseSet(ctx context.Context, id string) (ResponseSet, error)
	ListBySubject(ctx context.Context, subjectID string) ([]ResponseSet, error)

	SaveResult(ctx context.Context, responseID, assessmentID string, d ocean.ScoreDetails) error
	// LoadResult returns ErrNotFound when the response set has not been
	// scored yet.
	LoadResult(ctx context.Context, responseID string) (ocean.ScoreDetails, error)
}
