package dto

import (
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
)

// ReviewerIDs are snowflake ids and travel as strings. ParticipantID is
// optional and must name the caller when given.
type CreateNominationsRequest struct {
	ParticipantID  *int64   `json:"participant_id,string,omitempty"`
	ReviewerIDs    []string `json:"reviewer_ids"`
	ExternalEmails []string `json:"external_emails" binding:"omitempty,dive,max=320"`
}

type ReviewerResponse struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id,string"`
}

type NominationResponse struct {
	ID                      int64            `json:"id,string"`
	ParticipantAssessmentID int64            `json:"participant_assessment_id,string"`
	Reviewer                ReviewerResponse `json:"reviewer"`
	ExternalEmail           *string          `json:"external_email,omitempty"`
	NominatedByID           int64            `json:"nominated_by_id,string"`
	RequestStatus           string           `json:"request_status"`
	ReviewStatus            *string          `json:"review_status,omitempty"`
	CreatedAt               time.Time        `json:"created_at"`
}

type InviteWarning struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type CreateNominationsResponse struct {
	ParticipantAssessmentID int64                `json:"participant_assessment_id,string"`
	Created                 []NominationResponse `json:"created"`
	Skipped                 []ReviewerResponse   `json:"skipped"`
	Warnings                []InviteWarning      `json:"warnings,omitempty"`
	Quota                   int                  `json:"quota"`
	Remaining               int                  `json:"remaining"`
}

type NominationSummaryResponse struct {
	Active           int `json:"active"`
	Pending          int `json:"pending"`
	Accepted         int `json:"accepted"`
	Rejected         int `json:"rejected"`
	ReviewsCompleted int `json:"reviews_completed"`
	Quota            int `json:"quota"`
	Remaining        int `json:"remaining"`
}

func ToReviewerResponse(r model.ReviewerRef) ReviewerResponse {
	return ReviewerResponse{Kind: string(r.Kind), ID: r.ID}
}

func ToNominationResponse(n *model.ReviewerNomination) NominationResponse {
	return NominationResponse{
		ID:                      n.ID,
		ParticipantAssessmentID: n.ParticipantAssessmentID,
		Reviewer:                ToReviewerResponse(n.Reviewer),
		NominatedByID:           n.NominatedByID,
		RequestStatus:           string(n.RequestStatus),
		ReviewStatus:            n.ReviewStatus,
		CreatedAt:               n.CreatedAt,
	}
}

func ToNominationViewResponses(views []model.NominationView) []NominationResponse {
	out := make([]NominationResponse, 0, len(views))
	for i := range views {
		resp := ToNominationResponse(&views[i].ReviewerNomination)
		resp.ExternalEmail = views[i].ExternalEmail
		out = append(out, resp)
	}
	return out
}

func ToNominationResponses(nominations []model.ReviewerNomination) []NominationResponse {
	out := make([]NominationResponse, 0, len(nominations))
	for i := range nominations {
		out = append(out, ToNominationResponse(&nominations[i]))
	}
	return out
}

func ToCreateNominationsResponse(r *service.CreateNominationsResult) *CreateNominationsResponse {
	resp := &CreateNominationsResponse{
		ParticipantAssessmentID: r.ParticipantAssessmentID,
		Created:                 ToNominationResponses(r.Created),
		Skipped:                 make([]ReviewerResponse, 0, len(r.Skipped)),
		Quota:                   r.Quota,
		Remaining:               r.Remaining,
	}
	for _, ref := range r.Skipped {
		resp.Skipped = append(resp.Skipped, ToReviewerResponse(ref))
	}
	for _, f := range r.Failures {
		resp.Warnings = append(resp.Warnings, InviteWarning{Email: f.Email, Reason: f.Reason})
	}
	return resp
}

func ToNominationSummaryResponse(s *model.NominationSummary) *NominationSummaryResponse {
	return &NominationSummaryResponse{
		Active:           s.Active,
		Pending:          s.Pending,
		Accepted:         s.Accepted,
		Rejected:         s.Rejected,
		ReviewsCompleted: s.ReviewsCompleted,
		Quota:            s.Quota,
		Remaining:        s.Remaining,
	}
}
