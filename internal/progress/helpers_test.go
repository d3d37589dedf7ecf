package progress_test

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

// twoStepCatalog has step 10 with questions 1-3 and step 20 with questions 4-5.
func twoStepCatalog() *catalog.Catalog {
	return catalog.Build(
		model.QuestionSet{ID: 1, AssessmentType: model.AssessmentTypePulse},
		[]model.QuestionDefinition{
			{ID: 1, Order: 1, StepID: ptr(int64(10))},
			{ID: 2, Order: 2, StepID: ptr(int64(10))},
			{ID: 3, Order: 3, StepID: ptr(int64(10))},
			{ID: 4, Order: 4, StepID: ptr(int64(20))},
			{ID: 5, Order: 5, StepID: ptr(int64(20)), Required: true},
		},
		[]model.Step{{ID: 10, Order: 1}, {ID: 20, Order: 2}},
	)
}

func flatCatalog(n int) *catalog.Catalog {
	qs := make([]model.QuestionDefinition, n)
	for i := range qs {
		qs[i] = model.QuestionDefinition{ID: int64(i + 1), Order: i + 1}
	}
	return catalog.Build(model.QuestionSet{ID: 2, AssessmentType: model.AssessmentType360}, qs, nil)
}

func answers(ids ...int64) []model.Response {
	rs := make([]model.Response, len(ids))
	for i, id := range ids {
		rs[i] = model.Response{QuestionID: id, IsAnswered: true, AnswerText: ptr("yes")}
	}
	return rs
}

func answeredSet(ids ...int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
