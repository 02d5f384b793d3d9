package assess

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/psymetric/ocean-engine/internal/facets"
	"github.com/psymetric/ocean-engine/internal/ocean"
)

// SQLStore persists response sets and results through database/sql; both
// the sqlite and postgres schemas in internal/db satisfy it. Structured
// payloads live in JSON columns, matching how the rest of the platform
// stores assessment documents.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) PutResponseSet(ctx context.Context, rs ResponseSet) error {
	respJSON, err := json.Marshal(rs.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	qJSON, err := json.Marshal(rs.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	createdAt := rs.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO response_sets (id,assessment_id,subject_id,rater_id,tier,responses_json,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET responses_json=EXCLUDED.responses_json, questions_json=EXCLUDED.questions_json`,
		rs.ID, rs.AssessmentID, rs.SubjectID, rs.RaterID, string(rs.Tier), string(respJSON), string(qJSON), createdAt)
	return err
}

func (s *SQLStore) GetResponseSet(ctx context.Context, id string) (ResponseSet, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,assessment_id,subject_id,rater_id,tier,responses_json,questions_json,created_at
		FROM response_sets WHERE id=$1`, id)
	return scanResponseSet(row)
}

func (s *SQLStore) ListBySubject(ctx context.Context, subjectID string) ([]ResponseSet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,assessment_id,subject_id,rater_id,tier,responses_json,questions_json,created_at
		FROM response_sets WHERE subject_id=$1 ORDER BY created_at, id`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ResponseSet
	for rows.Next() {
		rs, err := scanResponseSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResponseSet(row scanner) (ResponseSet, error) {
	var rs ResponseSet
	var tier, respJSON, qJSON string
	if err := row.Scan(&rs.ID, &rs.AssessmentID, &rs.SubjectID, &rs.RaterID, &tier, &respJSON, &qJSON, &rs.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResponseSet{}, ErrNotFound
		}
		return ResponseSet{}, err
	}
	rs.Tier = facets.Tier(tier)
	if err := json.Unmarshal([]byte(respJSON), &rs.Responses); err != nil {
		return ResponseSet{}, fmt.Errorf("unmarshal responses: %w", err)
	}
	if err := json.Unmarshal([]byte(qJSON), &rs.Questions); err != nil {
		return ResponseSet{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	return rs, nil
}

func (s *SQLStore) SaveResult(ctx context.Context, responseID, assessmentID string, d ocean.ScoreDetails) error {
	dj, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO results (response_id,assessment_id,details_json,scored_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (response_id) DO UPDATE SET details_json=EXCLUDED.details_json, scored_at=EXCLUDED.scored_at`,
		responseID, assessmentID, string(dj), time.Now().Unix())
	return err
}

func (s *SQLStore) LoadResult(ctx context.Context, responseID string) (ocean.ScoreDetails, error) {
	var dj string
	err := s.db.QueryRowContext(ctx, `SELECT details_json FROM results WHERE response_id=$1`, responseID).Scan(&dj)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ocean.ScoreDetails{}, ErrNotFound
		}
		return ocean.ScoreDetails{}, err
	}
	var d ocean.ScoreDetails
	if err := json.Unmarshal([]byte(dj), &d); err != nil {
		return ocean.ScoreDetails{}, fmt.Errorf("unmarshal details: %w", err)
	}
	return d, nil
}

var _ Store = (*SQLStore)(nil)
