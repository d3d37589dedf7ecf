package model

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsActive reports whether a nomination in this state counts against quota.
func (s RequestStatus) IsActive() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted
}

// Review statuses mirrored from the reviewer's own response session.
const (
	ReviewStatusInProgress = "in_progress"
	ReviewStatusCompleted  = "completed"
)

type ReviewerKind string

const (
	ReviewerKindInternal ReviewerKind = "internal"
	ReviewerKindExternal ReviewerKind = "external"
)

// ReviewerRef is either an internal user or an ExternalReviewer record.
type ReviewerRef struct {
	Kind ReviewerKind `json:"kind"`
	ID   int64        `json:"id"`
}

func InternalReviewer(userID int64) ReviewerRef {
	return ReviewerRef{Kind: ReviewerKindInternal, ID: userID}
}

func ExternalReviewerRef(externalReviewerID int64) ReviewerRef {
	return ReviewerRef{Kind: ReviewerKindExternal, ID: externalReviewerID}
}

func (r ReviewerRef) IsExternal() bool {
	return r.Kind == ReviewerKindExternal
}

type ReviewerNomination struct {
	CreatedAt               time.Time     `json:"created_at"`
	ReviewStatus            *string       `json:"review_status,omitempty"`
	Reviewer                ReviewerRef   `json:"reviewer"`
	RequestStatus           RequestStatus `json:"request_status"`
	ID                      int64         `json:"id"`
	ParticipantAssessmentID int64         `json:"participant_assessment_id"`
	NominatedByID           int64         `json:"nominated_by_id"`
}

// ExternalReviewer is deduplicated by (Email, ClientID).
type ExternalReviewer struct {
	CreatedAt    time.Time `json:"created_at"`
	ReviewStatus *string   `json:"review_status,omitempty"`
	Email        string    `json:"email"`
	InviteToken  string    `json:"-"`
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
}

// NominationView is a nomination as callers see it: reviewStatus is read from
// the ExternalReviewer record for external reviewers and from the nomination
// itself otherwise.
type NominationView struct {
	ReviewerNomination
	ExternalEmail *string `json:"external_email,omitempty"`
}

type NominationSummary struct {
	Active           int `json:"active"`
	Pending          int `json:"pending"`
	Accepted         int `json:"accepted"`
	Rejected         int `json:"rejected"`
	ReviewsCompleted int `json:"reviews_completed"`
	Quota            int `json:"quota"`
	Remaining        int `json:"remaining"`
}
