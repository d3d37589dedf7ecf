package store

import (
	"context"
	"errors"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type participantAssessmentStore struct {
	queries *sqlc.Queries
}

func newParticipantAssessmentStore(queries *sqlc.Queries) ParticipantAssessmentStore {
	return &participantAssessmentStore{queries: queries}
}

func (s *participantAssessmentStore) GetByID(ctx context.Context, id int64) (*model.ParticipantAssessment, error) {
	row, err := s.queries.GetParticipantAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toParticipantAssessmentModel(row), nil
}

func (s *participantAssessmentStore) Ensure(ctx context.Context, pa *model.ParticipantAssessment) error {
	row, err := s.queries.EnsureParticipantAssessment(ctx, sqlc.EnsureParticipantAssessmentParams{
		ID:                       pa.ID,
		ParticipantID:            pa.ParticipantID,
		CohortAssessmentID:       pa.CohortAssessmentID,
		AllowReviewerNominations: pa.AllowReviewerNominations,
	})
	if err != nil {
		return err
	}
	*pa = *toParticipantAssessmentModel(row)
	return nil
}

func (s *participantAssessmentStore) Lock(ctx context.Context, id int64) (*model.ParticipantAssessment, error) {
	row, err := s.queries.LockParticipantAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toParticipantAssessmentModel(row), nil
}

func (s *participantAssessmentStore) UpdateStatus(ctx context.Context, id int64, status model.AssessmentStatus, submittedAt *time.Time) (*model.ParticipantAssessment, error) {
	row, err := s.queries.UpdateParticipantAssessmentStatus(ctx, sqlc.UpdateParticipantAssessmentStatusParams{
		ID:          id,
		Status:      string(status),
		SubmittedAt: toNullableTimestamp(submittedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toParticipantAssessmentModel(row), nil
}

func (s *participantAssessmentStore) MarkReportGenerated(ctx context.Context, id int64, at time.Time) error {
	return s.queries.MarkParticipantAssessmentReportGenerated(ctx, sqlc.MarkParticipantAssessmentReportGeneratedParams{
		ID:                id,
		ReportGeneratedAt: pgtype.Timestamptz{Time: at, Valid: true},
	})
}

func toParticipantAssessmentModel(row sqlc.ParticipantAssessment) *model.ParticipantAssessment {
	return &model.ParticipantAssessment{
		ID:                       row.ID,
		ParticipantID:            row.ParticipantID,
		CohortAssessmentID:       row.CohortAssessmentID,
		Status:                   model.AssessmentStatus(row.Status),
		Score:                    row.Score,
		SubmittedAt:              toTimePointer(row.SubmittedAt),
		AllowReviewerNominations: row.AllowReviewerNominations,
		ReportGeneratedAt:        toTimePointer(row.ReportGeneratedAt),
		CreatedAt:                row.CreatedAt.Time,
		UpdatedAt:                row.UpdatedAt.Time,
	}
}
