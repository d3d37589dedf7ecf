package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStateUnavailable wraps read failures; callers should retry rather than guess.
	ErrStateUnavailable = errors.New("state unavailable")
	// ErrWriteFailed wraps failures persisting an answer or session snapshot.
	// The respondent's position must not move past the failed write.
	ErrWriteFailed = errors.New("write failed")

	ErrSessionNotFound       = errors.New("response session not found")
	ErrNotSessionOwner       = errors.New("session belongs to another respondent")
	ErrSessionCompleted      = errors.New("response session already completed")
	ErrSessionNotCompleted   = errors.New("only completed sessions can be retaken")
	ErrQuestionNotInCatalog  = errors.New("question is not part of this question set")
	ErrAssessmentNotFound    = errors.New("participant assessment not found")
	ErrInvalidRespondent     = errors.New("invalid respondent")
	ErrNominationNotFound    = errors.New("nomination not found")
	ErrNominationNotAccepted = errors.New("nomination has not been accepted")
	ErrNominationNotPending  = errors.New("nomination is no longer pending")
	ErrNotNominatedReviewer  = errors.New("only the nominated reviewer may respond to this nomination")
	ErrNotNominator          = errors.New("only the nominator may delete this nomination")
	ErrNominationsDisabled   = errors.New("reviewer nominations are disabled for this assessment")
	ErrEmptyNominationBatch  = errors.New("no reviewers requested")
	ErrAllDuplicates         = errors.New("all requested reviewers are already nominated")
	ErrAllInvitesFailed      = errors.New("no requested reviewer could be nominated")
	ErrQuotaExceeded         = errors.New("reviewer quota exceeded")
)

// QuotaExceededError rejects a whole nomination batch and tells the caller
// how many more reviewers may still be requested.
type QuotaExceededError struct {
	Quota     int
	Active    int
	Requested int
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: %d active, %d requested, quota %d (%d remaining)",
		ErrQuotaExceeded, e.Active, e.Requested, e.Quota, e.Remaining)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

func newQuotaExceededError(quota, active, requested int) *QuotaExceededError {
	return &QuotaExceededError{
		Quota:     quota,
		Active:    active,
		Requested: requested,
		Remaining: max(0, quota-active),
	}
}
