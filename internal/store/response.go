package store

import (
	"context"
	"strings"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

type responseStore struct {
	queries *sqlc.Queries
}

func newResponseStore(queries *sqlc.Queries) ResponseStore {
	return &responseStore{queries: queries}
}

func (s *responseStore) Upsert(ctx context.Context, sessionID, questionID int64, answerText string) error {
	if strings.TrimSpace(answerText) == "" {
		// Zero affected rows means nothing was saved yet; no row is created.
		_, err := s.queries.ClearResponse(ctx, sqlc.ClearResponseParams{
			SessionID:  sessionID,
			QuestionID: questionID,
		})
		return err
	}

	_, err := s.queries.UpsertResponse(ctx, sqlc.UpsertResponseParams{
		SessionID:  sessionID,
		QuestionID: questionID,
		AnswerText: &answerText,
	})
	return err
}

func (s *responseStore) LoadAll(ctx context.Context, sessionID int64) ([]model.Response, error) {
	rows, err := s.queries.ListResponsesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	responses := make([]model.Response, len(rows))
	for i, row := range rows {
		responses[i] = model.Response{
			SessionID:     row.SessionID,
			QuestionID:    row.QuestionID,
			AnswerText:    row.AnswerText,
			IsAnswered:    row.IsAnswered,
			UpdatedAt:     row.UpdatedAt.Time,
			StepID:        row.StepID,
			QuestionOrder: int(row.QuestionOrder),
		}
	}
	return responses, nil
}

func (s *responseStore) DeleteBySession(ctx context.Context, sessionID int64) error {
	return s.queries.DeleteResponsesBySession(ctx, sessionID)
}
