package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
)

var (
	// ErrQuestionSetNotFound means no question set applies; the form cannot render.
	ErrQuestionSetNotFound      = errors.New("question set not found")
	ErrCohortAssessmentNotFound = errors.New("cohort assessment not found")
)

type Resolver struct {
	cohorts store.CohortStore
	sets    store.CatalogStore
}

func NewResolver(cohorts store.CohortStore, sets store.CatalogStore) *Resolver {
	return &Resolver{cohorts: cohorts, sets: sets}
}

// Resolve returns the catalog that applies to a cohort assessment along with
// the assessment itself.
func (r *Resolver) Resolve(ctx context.Context, cohortAssessmentID int64) (*Catalog, *model.CohortAssessment, error) {
	ca, err := r.CohortAssessment(ctx, cohortAssessmentID)
	if err != nil {
		return nil, nil, err
	}

	set, err := r.ResolveQuestionSet(ctx, ca)
	if err != nil {
		return nil, nil, err
	}

	c, err := r.build(ctx, set)
	if err != nil {
		return nil, nil, err
	}
	return c, ca, nil
}

func (r *Resolver) CohortAssessment(ctx context.Context, id int64) (*model.CohortAssessment, error) {
	ca, err := r.cohorts.GetCohortAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCohortAssessmentNotFound
		}
		return nil, fmt.Errorf("getting cohort assessment: %w", err)
	}
	return ca, nil
}

// Load returns the catalog of a known question set. Sessions pin their set,
// so later plan changes do not move a respondent onto a different form.
func (r *Resolver) Load(ctx context.Context, questionSetID int64) (*Catalog, error) {
	set, err := r.sets.GetQuestionSet(ctx, questionSetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQuestionSetNotFound
		}
		return nil, fmt.Errorf("getting question set: %w", err)
	}
	return r.build(ctx, set)
}

// ResolveQuestionSet applies the plan override for the assessment type, then
// the override embedded in plan metadata, then the system default.
func (r *Resolver) ResolveQuestionSet(ctx context.Context, ca *model.CohortAssessment) (*model.QuestionSet, error) {
	if ca.PlanID != nil {
		plan, err := r.cohorts.GetPlan(ctx, *ca.PlanID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			slog.WarnContext(ctx, "cohort plan missing, using system question set",
				"plan_id", *ca.PlanID,
				"cohort_assessment_id", ca.ID)
		case err != nil:
			return nil, fmt.Errorf("getting plan: %w", err)
		default:
			for _, candidate := range overrideCandidates(plan, ca.AssessmentType) {
				set, err := r.overrideSet(ctx, candidate, ca.AssessmentType)
				if err != nil {
					return nil, err
				}
				if set != nil {
					return set, nil
				}
			}
		}
	}

	set, err := r.sets.GetSystemQuestionSet(ctx, ca.AssessmentType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: no system set for type %q", ErrQuestionSetNotFound, ca.AssessmentType)
		}
		return nil, fmt.Errorf("getting system question set: %w", err)
	}
	return set, nil
}

// overrideSet returns nil when the referenced set is missing or of another type.
func (r *Resolver) overrideSet(ctx context.Context, id int64, assessmentType model.AssessmentType) (*model.QuestionSet, error) {
	set, err := r.sets.GetQuestionSet(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "plan override references missing question set", "question_set_id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("getting override question set: %w", err)
	}
	if set.AssessmentType != assessmentType {
		slog.WarnContext(ctx, "plan override type mismatch",
			"question_set_id", id,
			"want", assessmentType,
			"got", set.AssessmentType)
		return nil, nil
	}
	return set, nil
}

func (r *Resolver) build(ctx context.Context, set *model.QuestionSet) (*Catalog, error) {
	questions, err := r.sets.ListQuestions(ctx, set.ID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	var steps []model.Step
	if set.AssessmentType.IsStepGrouped() {
		steps, err = r.sets.ListSteps(ctx, set.ID)
		if err != nil {
			return nil, fmt.Errorf("listing steps: %w", err)
		}
	}
	return Build(*set, questions, steps), nil
}

func overrideCandidates(plan *model.Plan, assessmentType model.AssessmentType) []int64 {
	var ids []int64
	if id, ok := plan.QuestionSetOverrides[assessmentType]; ok {
		ids = append(ids, id)
	}
	if id, ok := ParseMetadataOverrides(plan.Metadata)[assessmentType]; ok {
		ids = append(ids, id)
	}
	return ids
}
