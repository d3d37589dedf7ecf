package store

import (
	"context"
	"errors"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/jackc/pgx/v5"
)

type catalogStore struct {
	queries *sqlc.Queries
}

func newCatalogStore(queries *sqlc.Queries) CatalogStore {
	return &catalogStore{queries: queries}
}

func (s *catalogStore) GetQuestionSet(ctx context.Context, id int64) (*model.QuestionSet, error) {
	row, err := s.queries.GetQuestionSet(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toQuestionSetModel(row), nil
}

func (s *catalogStore) GetSystemQuestionSet(ctx context.Context, assessmentType model.AssessmentType) (*model.QuestionSet, error) {
	row, err := s.queries.GetSystemQuestionSet(ctx, string(assessmentType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toQuestionSetModel(row), nil
}

func (s *catalogStore) ListQuestions(ctx context.Context, questionSetID int64) ([]model.QuestionDefinition, error) {
	rows, err := s.queries.ListQuestionsBySet(ctx, questionSetID)
	if err != nil {
		return nil, err
	}
	questions := make([]model.QuestionDefinition, len(rows))
	for i, row := range rows {
		questions[i] = toQuestionModel(row)
	}
	return questions, nil
}

func (s *catalogStore) ListSteps(ctx context.Context, questionSetID int64) ([]model.Step, error) {
	rows, err := s.queries.ListStepsBySet(ctx, questionSetID)
	if err != nil {
		return nil, err
	}
	steps := make([]model.Step, len(rows))
	for i, row := range rows {
		steps[i] = toStepModel(row)
	}
	return steps, nil
}

func (s *catalogStore) CreateQuestionSet(ctx context.Context, set *model.QuestionSet) error {
	row, err := s.queries.CreateQuestionSet(ctx, sqlc.CreateQuestionSetParams{
		ID:             set.ID,
		AssessmentType: string(set.AssessmentType),
		Name:           set.Name,
		IsSystem:       set.IsSystem,
		ReviewerQuota:  int32Ptr(set.ReviewerQuota),
	})
	if err != nil {
		return err
	}
	*set = *toQuestionSetModel(row)
	return nil
}

func (s *catalogStore) CreateStep(ctx context.Context, step *model.Step) error {
	row, err := s.queries.CreateStep(ctx, sqlc.CreateStepParams{
		ID:            step.ID,
		QuestionSetID: step.QuestionSetID,
		StepOrder:     int32(step.Order),
		Title:         step.Title,
	})
	if err != nil {
		return err
	}
	*step = toStepModel(row)
	return nil
}

func (s *catalogStore) CreateQuestion(ctx context.Context, question *model.QuestionDefinition) error {
	row, err := s.queries.CreateQuestion(ctx, sqlc.CreateQuestionParams{
		ID:            question.ID,
		QuestionSetID: question.QuestionSetID,
		StepID:        question.StepID,
		QuestionOrder: int32(question.Order),
		Required:      question.Required,
		QuestionType:  question.Type,
		Text:          question.Text,
	})
	if err != nil {
		return err
	}
	*question = toQuestionModel(row)
	return nil
}

func toQuestionSetModel(row sqlc.QuestionSet) *model.QuestionSet {
	return &model.QuestionSet{
		ID:             row.ID,
		AssessmentType: model.AssessmentType(row.AssessmentType),
		Name:           row.Name,
		IsSystem:       row.IsSystem,
		ReviewerQuota:  intPtr(row.ReviewerQuota),
		CreatedAt:      row.CreatedAt.Time,
	}
}

func toQuestionModel(row sqlc.Question) model.QuestionDefinition {
	return model.QuestionDefinition{
		ID:            row.ID,
		QuestionSetID: row.QuestionSetID,
		StepID:        row.StepID,
		Order:         int(row.QuestionOrder),
		Required:      row.Required,
		Type:          row.QuestionType,
		Text:          row.Text,
	}
}

func toStepModel(row sqlc.Step) model.Step {
	return model.Step{
		ID:            row.ID,
		QuestionSetID: row.QuestionSetID,
		Order:         int(row.StepOrder),
		Title:         row.Title,
	}
}
