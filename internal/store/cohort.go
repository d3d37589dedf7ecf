package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/jackc/pgx/v5"
)

type cohortStore struct {
	queries *sqlc.Queries
}

func newCohortStore(queries *sqlc.Queries) CohortStore {
	return &cohortStore{queries: queries}
}

func (s *cohortStore) GetCohortAssessment(ctx context.Context, id int64) (*model.CohortAssessment, error) {
	row, err := s.queries.GetCohortAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.CohortAssessment{
		ID:                       row.ID,
		CohortID:                 row.CohortID,
		ClientID:                 row.ClientID,
		PlanID:                   row.PlanID,
		AssessmentType:           model.AssessmentType(row.AssessmentType),
		Name:                     row.Name,
		AllowReviewerNominations: row.AllowReviewerNominations,
	}, nil
}

func (s *cohortStore) GetPlan(ctx context.Context, id int64) (*model.Plan, error) {
	row, err := s.queries.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPlanModel(row), nil
}

// toPlanModel drops a malformed override mapping rather than failing the
// lookup; the resolver falls back to the system default in that case.
func toPlanModel(row sqlc.Plan) *model.Plan {
	plan := &model.Plan{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.Metadata != nil {
		plan.Metadata = *row.Metadata
	}
	if len(row.QuestionSetOverrides) > 0 {
		var overrides map[model.AssessmentType]int64
		if err := json.Unmarshal(row.QuestionSetOverrides, &overrides); err == nil {
			plan.QuestionSetOverrides = overrides
		}
	}
	return plan
}
