package catalog_test

import (
	"context"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
)

type mockCohortStore struct {
	getCohortAssessmentFn func(ctx context.Context, id int64) (*model.CohortAssessment, error)
	getPlanFn             func(ctx context.Context, id int64) (*model.Plan, error)
}

func (m *mockCohortStore) GetCohortAssessment(ctx context.Context, id int64) (*model.CohortAssessment, error) {
	if m.getCohortAssessmentFn != nil {
		return m.getCohortAssessmentFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCohortStore) GetPlan(ctx context.Context, id int64) (*model.Plan, error) {
	if m.getPlanFn != nil {
		return m.getPlanFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

// memCatalogStore serves question sets from maps keyed by id.
type memCatalogStore struct {
	sets      map[int64]*model.QuestionSet
	questions map[int64][]model.QuestionDefinition
	steps     map[int64][]model.Step
	listErr   error

	listStepsCalls int
}

func newMemCatalogStore() *memCatalogStore {
	return &memCatalogStore{
		sets:      map[int64]*model.QuestionSet{},
		questions: map[int64][]model.QuestionDefinition{},
		steps:     map[int64][]model.Step{},
	}
}

func (m *memCatalogStore) GetQuestionSet(_ context.Context, id int64) (*model.QuestionSet, error) {
	set, ok := m.sets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return set, nil
}

func (m *memCatalogStore) GetSystemQuestionSet(_ context.Context, t model.AssessmentType) (*model.QuestionSet, error) {
	for _, set := range m.sets {
		if set.IsSystem && set.AssessmentType == t {
			return set, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memCatalogStore) ListQuestions(_ context.Context, setID int64) ([]model.QuestionDefinition, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.questions[setID], nil
}

func (m *memCatalogStore) ListSteps(_ context.Context, setID int64) ([]model.Step, error) {
	m.listStepsCalls++
	return m.steps[setID], nil
}

func (m *memCatalogStore) CreateQuestionSet(_ context.Context, set *model.QuestionSet) error {
	m.sets[set.ID] = set
	return nil
}

func (m *memCatalogStore) CreateStep(_ context.Context, step *model.Step) error {
	m.steps[step.QuestionSetID] = append(m.steps[step.QuestionSetID], *step)
	return nil
}

func (m *memCatalogStore) CreateQuestion(_ context.Context, q *model.QuestionDefinition) error {
	m.questions[q.QuestionSetID] = append(m.questions[q.QuestionSetID], *q)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
