package store

import (
	"context"
	"errors"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/jackc/pgx/v5"
)

type nominationStore struct {
	queries *sqlc.Queries
}

func newNominationStore(queries *sqlc.Queries) NominationStore {
	return &nominationStore{queries: queries}
}

func (s *nominationStore) GetByID(ctx context.Context, id int64) (*model.ReviewerNomination, error) {
	row, err := s.queries.GetReviewerNomination(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNominationModel(row), nil
}

func (s *nominationStore) Create(ctx context.Context, nomination *model.ReviewerNomination) error {
	params := sqlc.CreateReviewerNominationParams{
		ID:                      nomination.ID,
		ParticipantAssessmentID: nomination.ParticipantAssessmentID,
		IsExternal:              nomination.Reviewer.IsExternal(),
		NominatedByID:           nomination.NominatedByID,
	}
	reviewerID := nomination.Reviewer.ID
	if nomination.Reviewer.IsExternal() {
		params.ExternalReviewerID = &reviewerID
	} else {
		params.ReviewerID = &reviewerID
	}

	row, err := s.queries.CreateReviewerNomination(ctx, params)
	if err != nil {
		return err
	}
	*nomination = *toNominationModel(row)
	return nil
}

func (s *nominationStore) ListActive(ctx context.Context, participantAssessmentID int64) ([]model.ReviewerNomination, error) {
	rows, err := s.queries.ListActiveNominations(ctx, participantAssessmentID)
	if err != nil {
		return nil, err
	}
	return toNominationModels(rows), nil
}

func (s *nominationStore) ListByParticipantAssessment(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error) {
	rows, err := s.queries.ListNominationsByParticipantAssessment(ctx, participantAssessmentID)
	if err != nil {
		return nil, err
	}
	views := make([]model.NominationView, len(rows))
	for i, row := range rows {
		nomination := toNominationModel(sqlc.ReviewerNomination{
			ID:                      row.ID,
			ParticipantAssessmentID: row.ParticipantAssessmentID,
			ReviewerID:              row.ReviewerID,
			ExternalReviewerID:      row.ExternalReviewerID,
			IsExternal:              row.IsExternal,
			NominatedByID:           row.NominatedByID,
			RequestStatus:           row.RequestStatus,
			ReviewStatus:            row.ReviewStatus,
			CreatedAt:               row.CreatedAt,
			UpdatedAt:               row.UpdatedAt,
		})
		// External reviewers track review progress on their own record.
		if row.IsExternal {
			nomination.ReviewStatus = row.ExternalReviewStatus
		}
		views[i] = model.NominationView{
			ReviewerNomination: *nomination,
			ExternalEmail:      row.ExternalEmail,
		}
	}
	return views, nil
}

func (s *nominationStore) ListByReviewer(ctx context.Context, userID int64) ([]model.ReviewerNomination, error) {
	rows, err := s.queries.ListNominationsByReviewer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toNominationModels(rows), nil
}

func (s *nominationStore) UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (*model.ReviewerNomination, error) {
	row, err := s.queries.UpdateNominationRequestStatus(ctx, sqlc.UpdateNominationRequestStatusParams{
		ID:            id,
		RequestStatus: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNominationModel(row), nil
}

func (s *nominationStore) UpdateReviewStatus(ctx context.Context, id int64, reviewStatus string) error {
	return s.queries.UpdateNominationReviewStatus(ctx, sqlc.UpdateNominationReviewStatusParams{
		ID:           id,
		ReviewStatus: &reviewStatus,
	})
}

func (s *nominationStore) DeletePending(ctx context.Context, id, nominatorID int64) (bool, error) {
	affected, err := s.queries.DeletePendingNomination(ctx, sqlc.DeletePendingNominationParams{
		ID:            id,
		NominatedByID: nominatorID,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *nominationStore) Summary(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error) {
	row, err := s.queries.NominationSummary(ctx, participantAssessmentID)
	if err != nil {
		return nil, err
	}
	return &model.NominationSummary{
		Active:           int(row.Pending + row.Accepted),
		Pending:          int(row.Pending),
		Accepted:         int(row.Accepted),
		Rejected:         int(row.Rejected),
		ReviewsCompleted: int(row.ReviewsCompleted),
	}, nil
}

func toNominationModels(rows []sqlc.ReviewerNomination) []model.ReviewerNomination {
	nominations := make([]model.ReviewerNomination, len(rows))
	for i, row := range rows {
		nominations[i] = *toNominationModel(row)
	}
	return nominations
}

func toNominationModel(row sqlc.ReviewerNomination) *model.ReviewerNomination {
	var reviewer model.ReviewerRef
	switch {
	case row.IsExternal && row.ExternalReviewerID != nil:
		reviewer = model.ExternalReviewerRef(*row.ExternalReviewerID)
	case row.ReviewerID != nil:
		reviewer = model.InternalReviewer(*row.ReviewerID)
	}

	return &model.ReviewerNomination{
		ID:                      row.ID,
		ParticipantAssessmentID: row.ParticipantAssessmentID,
		Reviewer:                reviewer,
		NominatedByID:           row.NominatedByID,
		RequestStatus:           model.RequestStatus(row.RequestStatus),
		ReviewStatus:            row.ReviewStatus,
		CreatedAt:               row.CreatedAt.Time,
	}
}
