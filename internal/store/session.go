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

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) GetByID(ctx context.Context, id int64) (*model.ResponseSession, error) {
	row, err := s.queries.GetResponseSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) Ensure(ctx context.Context, session *model.ResponseSession) (bool, error) {
	params := sqlc.EnsureResponseSessionParams{
		ID:                      session.ID,
		ParticipantAssessmentID: session.Owner.ParticipantAssessmentID,
		QuestionSetID:           session.Owner.QuestionSetID,
		RespondentType:          string(session.Owner.Respondent.Type()),
	}
	if id, ok := session.Owner.Respondent.ParticipantID(); ok {
		params.ParticipantID = &id
	}
	if id, ok := session.Owner.Respondent.NominationID(); ok {
		params.NominationID = &id
	}

	row, err := s.queries.EnsureResponseSession(ctx, params)
	if err != nil {
		return false, err
	}
	*session = *toSessionModel(sqlc.ResponseSession{
		ID:                      row.ID,
		ParticipantAssessmentID: row.ParticipantAssessmentID,
		QuestionSetID:           row.QuestionSetID,
		RespondentType:          row.RespondentType,
		ParticipantID:           row.ParticipantID,
		NominationID:            row.NominationID,
		Status:                  row.Status,
		CompletionPercent:       row.CompletionPercent,
		LastQuestionID:          row.LastQuestionID,
		LastStepID:              row.LastStepID,
		StartedAt:               row.StartedAt,
		SubmittedAt:             row.SubmittedAt,
		UpdatedAt:               row.UpdatedAt,
	})
	return row.Inserted, nil
}

func (s *sessionStore) UpdateProgress(ctx context.Context, id int64, lastQuestionID, lastStepID *int64, completionPercent int) (*model.ResponseSession, error) {
	row, err := s.queries.UpdateResponseSessionProgress(ctx, sqlc.UpdateResponseSessionProgressParams{
		ID:                id,
		LastQuestionID:    lastQuestionID,
		LastStepID:        lastStepID,
		CompletionPercent: int32(completionPercent),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) Complete(ctx context.Context, id int64, submittedAt time.Time) (*model.ResponseSession, error) {
	row, err := s.queries.CompleteResponseSession(ctx, sqlc.CompleteResponseSessionParams{
		ID:          id,
		SubmittedAt: pgtype.Timestamptz{Time: submittedAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) Reset(ctx context.Context, id int64) (*model.ResponseSession, error) {
	row, err := s.queries.ResetResponseSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func toSessionModel(row sqlc.ResponseSession) *model.ResponseSession {
	var respondent model.RespondentRef
	switch {
	case row.RespondentType == string(model.RespondentTypeReviewer) && row.NominationID != nil:
		respondent = model.ReviewerRespondent(*row.NominationID)
	case row.ParticipantID != nil:
		respondent = model.ParticipantRespondent(*row.ParticipantID)
	}

	return &model.ResponseSession{
		ID: row.ID,
		Owner: model.OwnerKey{
			ParticipantAssessmentID: row.ParticipantAssessmentID,
			QuestionSetID:           row.QuestionSetID,
			Respondent:              respondent,
		},
		Status:            model.SessionStatus(row.Status),
		CompletionPercent: int(row.CompletionPercent),
		LastQuestionID:    row.LastQuestionID,
		LastStepID:        row.LastStepID,
		StartedAt:         row.StartedAt.Time,
		SubmittedAt:       toTimePointer(row.SubmittedAt),
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
