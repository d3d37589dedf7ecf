package model

import "time"

type AssessmentStatus string

const (
	AssessmentStatusNotStarted AssessmentStatus = "Not started"
	AssessmentStatusInProgress AssessmentStatus = "In Progress"
	AssessmentStatusCompleted  AssessmentStatus = "Completed"
)

// Plan carries the per-client configuration of a cohort. QuestionSetOverrides
// is the structured override mapping; Metadata is free text that older plans
// used to embed the same mapping in.
type Plan struct {
	CreatedAt            time.Time                `json:"created_at"`
	QuestionSetOverrides map[AssessmentType]int64 `json:"question_set_overrides,omitempty"`
	Metadata             string                   `json:"metadata,omitempty"`
	Name                 string                   `json:"name"`
	ID                   int64                    `json:"id"`
}

// CohortAssessment is one assessment scheduled for a cohort. ClientID and
// PlanID are inherited from the cohort.
type CohortAssessment struct {
	PlanID                   *int64         `json:"plan_id,omitempty"`
	AssessmentType           AssessmentType `json:"assessment_type"`
	Name                     string         `json:"name"`
	ID                       int64          `json:"id"`
	CohortID                 int64          `json:"cohort_id"`
	ClientID                 int64          `json:"client_id"`
	AllowReviewerNominations bool           `json:"allow_reviewer_nominations"`
}

// ParticipantAssessment is the coarse record participants and admins see.
// Status is a cached projection of the participant's response session.
type ParticipantAssessment struct {
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
	Score                    *float64         `json:"score,omitempty"`
	SubmittedAt              *time.Time       `json:"submitted_at,omitempty"`
	ReportGeneratedAt        *time.Time       `json:"report_generated_at,omitempty"`
	Status                   AssessmentStatus `json:"status"`
	ID                       int64            `json:"id"`
	ParticipantID            int64            `json:"participant_id"`
	CohortAssessmentID       int64            `json:"cohort_assessment_id"`
	AllowReviewerNominations bool             `json:"allow_reviewer_nominations"`
}

func (p *ParticipantAssessment) HasReport() bool {
	return p.ReportGeneratedAt != nil
}
