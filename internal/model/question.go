package model

import "time"

type AssessmentType string

const (
	AssessmentType360   AssessmentType = "360"
	AssessmentTypePulse AssessmentType = "pulse"
)

// IsStepGrouped reports whether question sets of this type are partitioned
// into steps. Only pulse forms are.
func (t AssessmentType) IsStepGrouped() bool {
	return t == AssessmentTypePulse
}

func (t AssessmentType) Valid() bool {
	return t == AssessmentType360 || t == AssessmentTypePulse
}

// QuestionSet is a published assessment definition. System sets are the
// defaults for their type; anything else is a per-plan customization.
type QuestionSet struct {
	CreatedAt      time.Time      `json:"created_at"`
	ReviewerQuota  *int           `json:"reviewer_quota,omitempty"`
	AssessmentType AssessmentType `json:"assessment_type"`
	Name           string         `json:"name"`
	ID             int64          `json:"id"`
	IsSystem       bool           `json:"is_system"`
}

type Step struct {
	Title         string `json:"title"`
	ID            int64  `json:"id"`
	QuestionSetID int64  `json:"question_set_id"`
	Order         int    `json:"order"`
}

// QuestionDefinition is immutable once its set is published.
// A nil StepID means the question is not grouped under any step.
type QuestionDefinition struct {
	StepID        *int64 `json:"step_id,omitempty"`
	Type          string `json:"type"`
	Text          string `json:"text"`
	ID            int64  `json:"id"`
	QuestionSetID int64  `json:"question_set_id"`
	Order         int    `json:"order"`
	Required      bool   `json:"required"`
}
