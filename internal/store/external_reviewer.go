package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type externalReviewerStore struct {
	queries *sqlc.Queries
}

func newExternalReviewerStore(queries *sqlc.Queries) ExternalReviewerStore {
	return &externalReviewerStore{queries: queries}
}

func (s *externalReviewerStore) GetByID(ctx context.Context, id int64) (*model.ExternalReviewer, error) {
	row, err := s.queries.GetExternalReviewer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExternalReviewerModel(row), nil
}

func (s *externalReviewerStore) GetByEmail(ctx context.Context, clientID int64, email string) (*model.ExternalReviewer, error) {
	row, err := s.queries.GetExternalReviewerByEmail(ctx, sqlc.GetExternalReviewerByEmailParams{
		ClientID: clientID,
		Email:    email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExternalReviewerModel(row), nil
}

func (s *externalReviewerStore) Upsert(ctx context.Context, reviewer *model.ExternalReviewer) (bool, error) {
	token, err := uuid.Parse(reviewer.InviteToken)
	if err != nil {
		return false, fmt.Errorf("parsing invite token: %w", err)
	}

	row, err := s.queries.UpsertExternalReviewer(ctx, sqlc.UpsertExternalReviewerParams{
		ID:          reviewer.ID,
		ClientID:    reviewer.ClientID,
		Email:       reviewer.Email,
		InviteToken: pgtype.UUID{Bytes: token, Valid: true},
	})
	if err != nil {
		return false, err
	}
	*reviewer = *toExternalReviewerModel(sqlc.ExternalReviewer{
		ID:           row.ID,
		ClientID:     row.ClientID,
		Email:        row.Email,
		ReviewStatus: row.ReviewStatus,
		InviteToken:  row.InviteToken,
		CreatedAt:    row.CreatedAt,
	})
	return row.Inserted, nil
}

func (s *externalReviewerStore) UpdateReviewStatus(ctx context.Context, id int64, reviewStatus string) error {
	return s.queries.UpdateExternalReviewerReviewStatus(ctx, sqlc.UpdateExternalReviewerReviewStatusParams{
		ID:           id,
		ReviewStatus: &reviewStatus,
	})
}

func toExternalReviewerModel(row sqlc.ExternalReviewer) *model.ExternalReviewer {
	reviewer := &model.ExternalReviewer{
		ID:           row.ID,
		ClientID:     row.ClientID,
		Email:        row.Email,
		ReviewStatus: row.ReviewStatus,
		CreatedAt:    row.CreatedAt.Time,
	}
	if row.InviteToken.Valid {
		reviewer.InviteToken = uuid.UUID(row.InviteToken.Bytes).String()
	}
	return reviewer
}
