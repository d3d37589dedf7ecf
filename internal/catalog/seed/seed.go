// Package seed loads published question sets from YAML into the catalog.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
	"gopkg.in/yaml.v3"
)

type File struct {
	QuestionSets []QuestionSet `yaml:"question_sets"`
}

// QuestionSet ids are explicit so plans can reference them across
// environments. Step and question ids are generated when omitted.
type QuestionSet struct {
	ID             int64      `yaml:"id"`
	Name           string     `yaml:"name"`
	AssessmentType string     `yaml:"assessment_type"`
	IsSystem       bool       `yaml:"is_system"`
	ReviewerQuota  *int       `yaml:"reviewer_quota,omitempty"`
	Steps          []Step     `yaml:"steps,omitempty"`
	Questions      []Question `yaml:"questions,omitempty"`
}

type Step struct {
	ID        int64      `yaml:"id,omitempty"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

type Question struct {
	ID       int64  `yaml:"id,omitempty"`
	Text     string `yaml:"text"`
	Type     string `yaml:"type,omitempty"`
	Required bool   `yaml:"required"`
}

type Result struct {
	Created []int64
	Skipped []int64
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse rejects unknown keys so typos in seed files fail loudly.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) Validate() error {
	var errs []error
	seenSets := make(map[int64]bool)
	seenQuestions := make(map[int64]bool)
	systemTypes := make(map[model.AssessmentType]int64)

	for i, set := range f.QuestionSets {
		where := fmt.Sprintf("question_sets[%d]", i)
		at := model.AssessmentType(set.AssessmentType)

		switch {
		case set.ID <= 0:
			errs = append(errs, fmt.Errorf("%s: id is required", where))
		case seenSets[set.ID]:
			errs = append(errs, fmt.Errorf("%s: duplicate id %d", where, set.ID))
		}
		seenSets[set.ID] = true

		if set.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		}
		if !at.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown assessment_type %q", where, set.AssessmentType))
		}
		if len(set.Steps) > 0 && !at.IsStepGrouped() {
			errs = append(errs, fmt.Errorf("%s: %s question sets cannot have steps", where, set.AssessmentType))
		}
		if set.ReviewerQuota != nil && *set.ReviewerQuota < 0 {
			errs = append(errs, fmt.Errorf("%s: reviewer_quota must not be negative", where))
		}
		if set.IsSystem {
			if other, ok := systemTypes[at]; ok {
				errs = append(errs, fmt.Errorf("%s: set %d is already the system %s set", where, other, at))
			}
			systemTypes[at] = set.ID
		}

		checkQuestion := func(qwhere string, q Question) {
			if q.Text == "" {
				errs = append(errs, fmt.Errorf("%s: text is required", qwhere))
			}
			if q.ID != 0 {
				if seenQuestions[q.ID] {
					errs = append(errs, fmt.Errorf("%s: duplicate id %d", qwhere, q.ID))
				}
				seenQuestions[q.ID] = true
			}
		}
		for si, step := range set.Steps {
			swhere := fmt.Sprintf("%s.steps[%d]", where, si)
			if step.Title == "" {
				errs = append(errs, fmt.Errorf("%s: title is required", swhere))
			}
			for qi, q := range step.Questions {
				checkQuestion(fmt.Sprintf("%s.questions[%d]", swhere, qi), q)
			}
		}
		for qi, q := range set.Questions {
			checkQuestion(fmt.Sprintf("%s.questions[%d]", where, qi), q)
		}
	}

	return errors.Join(errs...)
}

// Apply creates every question set not already present. Published sets are
// immutable, so an existing id is skipped rather than updated. Run it inside
// a transaction so a failed set leaves nothing half-written.
func Apply(ctx context.Context, catalog store.CatalogStore, file *File) (*Result, error) {
	result := &Result{}

	for _, set := range file.QuestionSets {
		_, err := catalog.GetQuestionSet(ctx, set.ID)
		switch {
		case err == nil:
			slog.InfoContext(ctx, "question set already present, skipping", "question_set_id", set.ID)
			result.Skipped = append(result.Skipped, set.ID)
			continue
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("checking question set %d: %w", set.ID, err)
		}

		if err := createSet(ctx, catalog, set); err != nil {
			return nil, fmt.Errorf("creating question set %d: %w", set.ID, err)
		}
		slog.InfoContext(ctx, "question set created",
			"question_set_id", set.ID,
			"assessment_type", set.AssessmentType,
			"steps", len(set.Steps))
		result.Created = append(result.Created, set.ID)
	}

	return result, nil
}

func createSet(ctx context.Context, catalog store.CatalogStore, set QuestionSet) error {
	if err := catalog.CreateQuestionSet(ctx, &model.QuestionSet{
		ID:             set.ID,
		AssessmentType: model.AssessmentType(set.AssessmentType),
		Name:           set.Name,
		IsSystem:       set.IsSystem,
		ReviewerQuota:  set.ReviewerQuota,
	}); err != nil {
		return err
	}

	// Question order runs across the whole set, steps included.
	order := 0
	for i, s := range set.Steps {
		step := &model.Step{
			ID:            orNew(s.ID),
			QuestionSetID: set.ID,
			Title:         s.Title,
			Order:         i + 1,
		}
		if err := catalog.CreateStep(ctx, step); err != nil {
			return fmt.Errorf("step %q: %w", s.Title, err)
		}
		for _, q := range s.Questions {
			order++
			if err := createQuestion(ctx, catalog, set.ID, &step.ID, order, q); err != nil {
				return err
			}
		}
	}
	for _, q := range set.Questions {
		order++
		if err := createQuestion(ctx, catalog, set.ID, nil, order, q); err != nil {
			return err
		}
	}
	return nil
}

func createQuestion(ctx context.Context, catalog store.CatalogStore, setID int64, stepID *int64, order int, q Question) error {
	questionType := q.Type
	if questionType == "" {
		questionType = "text"
	}
	if err := catalog.CreateQuestion(ctx, &model.QuestionDefinition{
		ID:            orNew(q.ID),
		QuestionSetID: setID,
		StepID:        stepID,
		Order:         order,
		Required:      q.Required,
		Type:          questionType,
		Text:          q.Text,
	}); err != nil {
		return fmt.Errorf("question %d: %w", order, err)
	}
	return nil
}

func orNew(v int64) int64 {
	if v != 0 {
		return v
	}
	return id.New()
}
