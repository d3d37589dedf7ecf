package store

import (
	"context"
	"errors"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// CatalogStore defines the contract for question set, step and question access
type CatalogStore interface {
	GetQuestionSet(ctx context.Context, id int64) (*model.QuestionSet, error)
	GetSystemQuestionSet(ctx context.Context, assessmentType model.AssessmentType) (*model.QuestionSet, error)
	ListQuestions(ctx context.Context, questionSetID int64) ([]model.QuestionDefinition, error)
	ListSteps(ctx context.Context, questionSetID int64) ([]model.Step, error)
	CreateQuestionSet(ctx context.Context, set *model.QuestionSet) error
	CreateStep(ctx context.Context, step *model.Step) error
	CreateQuestion(ctx context.Context, question *model.QuestionDefinition) error
}

// CohortStore is read-only; cohorts and plans are managed elsewhere.
type CohortStore interface {
	GetCohortAssessment(ctx context.Context, id int64) (*model.CohortAssessment, error)
	GetPlan(ctx context.Context, id int64) (*model.Plan, error)
}

// ParticipantAssessmentStore defines the contract for participant assessment access
type ParticipantAssessmentStore interface {
	GetByID(ctx context.Context, id int64) (*model.ParticipantAssessment, error)
	// Ensure returns the existing row for the owner or inserts pa.
	Ensure(ctx context.Context, pa *model.ParticipantAssessment) error
	Lock(ctx context.Context, id int64) (*model.ParticipantAssessment, error) // SELECT ... FOR UPDATE, tx only
	UpdateStatus(ctx context.Context, id int64, status model.AssessmentStatus, submittedAt *time.Time) (*model.ParticipantAssessment, error)
	MarkReportGenerated(ctx context.Context, id int64, at time.Time) error
}

// SessionStore defines the contract for response session access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.ResponseSession, error)
	// Ensure returns the session for session.Owner, inserting it when absent.
	// created reports whether this call inserted the row.
	Ensure(ctx context.Context, session *model.ResponseSession) (created bool, err error)
	UpdateProgress(ctx context.Context, id int64, lastQuestionID, lastStepID *int64, completionPercent int) (*model.ResponseSession, error)
	Complete(ctx context.Context, id int64, submittedAt time.Time) (*model.ResponseSession, error)
	Reset(ctx context.Context, id int64) (*model.ResponseSession, error)
}

// ResponseStore defines the contract for answer access
type ResponseStore interface {
	// Upsert stores a non-blank answer. A blank answer clears an existing row
	// and never creates one.
	Upsert(ctx context.Context, sessionID, questionID int64, answerText string) error
	LoadAll(ctx context.Context, sessionID int64) ([]model.Response, error)
	DeleteBySession(ctx context.Context, sessionID int64) error
}

// NominationStore defines the contract for reviewer nomination access
type NominationStore interface {
	GetByID(ctx context.Context, id int64) (*model.ReviewerNomination, error)
	Create(ctx context.Context, nomination *model.ReviewerNomination) error
	ListActive(ctx context.Context, participantAssessmentID int64) ([]model.ReviewerNomination, error)
	ListByParticipantAssessment(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error)
	ListByReviewer(ctx context.Context, userID int64) ([]model.ReviewerNomination, error)
	// UpdateRequestStatus only transitions pending nominations; ErrNotFound otherwise.
	UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (*model.ReviewerNomination, error)
	UpdateReviewStatus(ctx context.Context, id int64, reviewStatus string) error
	// DeletePending reports whether a pending nomination owned by nominatorID was removed.
	DeletePending(ctx context.Context, id, nominatorID int64) (bool, error)
	Summary(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error)
}

// ExternalReviewerStore defines the contract for external reviewer access
type ExternalReviewerStore interface {
	GetByID(ctx context.Context, id int64) (*model.ExternalReviewer, error)
	GetByEmail(ctx context.Context, clientID int64, email string) (*model.ExternalReviewer, error)
	// Upsert reuses the record for (Email, ClientID) when one exists.
	Upsert(ctx context.Context, reviewer *model.ExternalReviewer) (created bool, err error)
	UpdateReviewStatus(ctx context.Context, id int64, reviewStatus string) error
}
