package dto

import (
	"strconv"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
)

// Reviewer sessions are addressed with NominationID; without it the caller
// acts as the participant.
type AnswerRequest struct {
	Answer       string `json:"answer"`
	NominationID *int64 `json:"nomination_id,string,omitempty"`
}

type CompleteRequest struct {
	QuestionID   *int64 `json:"question_id,string,omitempty"`
	Answer       string `json:"answer"`
	NominationID *int64 `json:"nomination_id,string,omitempty"`
}

type RetakeRequest struct {
	NominationID *int64 `json:"nomination_id,string,omitempty"`
}

type SessionResponse struct {
	ID                      int64      `json:"id,string"`
	ParticipantAssessmentID int64      `json:"participant_assessment_id,string"`
	QuestionSetID           int64      `json:"question_set_id,string"`
	RespondentType          string     `json:"respondent_type"`
	NominationID            *int64     `json:"nomination_id,string,omitempty"`
	Status                  string     `json:"status"`
	CompletionPercent       int        `json:"completion_percent"`
	LastQuestionID          *int64     `json:"last_question_id,string,omitempty"`
	LastStepID              *int64     `json:"last_step_id,string,omitempty"`
	StartedAt               time.Time  `json:"started_at"`
	SubmittedAt             *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type ProgressResponse struct {
	Answered   int `json:"answered"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type PositionResponse struct {
	StepIndex     *int `json:"step_index,omitempty"`
	QuestionIndex int  `json:"question_index"`
}

type StepResponse struct {
	ID    int64  `json:"id,string"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type QuestionResponse struct {
	ID       int64  `json:"id,string"`
	StepID   *int64 `json:"step_id,string,omitempty"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
	Required bool   `json:"required"`
}

type OpenSessionResponse struct {
	Session          *SessionResponse   `json:"session"`
	AssessmentStatus string             `json:"assessment_status"`
	QuestionSetName  string             `json:"question_set_name"`
	Steps            []StepResponse     `json:"steps"`
	Questions        []QuestionResponse `json:"questions"`
	Answers          map[string]string  `json:"answers"`
	Progress         ProgressResponse   `json:"progress"`
	Position         PositionResponse   `json:"position"`
	Created          bool               `json:"created"`
}

type AdvanceResponse struct {
	Session  *SessionResponse `json:"session"`
	Progress ProgressResponse `json:"progress"`
	Position PositionResponse `json:"position"`
}

func ToSessionResponse(s *model.ResponseSession) *SessionResponse {
	resp := &SessionResponse{
		ID:                      s.ID,
		ParticipantAssessmentID: s.Owner.ParticipantAssessmentID,
		QuestionSetID:           s.Owner.QuestionSetID,
		RespondentType:          string(s.Owner.Respondent.Type()),
		Status:                  string(s.Status),
		CompletionPercent:       s.CompletionPercent,
		LastQuestionID:          s.LastQuestionID,
		LastStepID:              s.LastStepID,
		StartedAt:               s.StartedAt,
		SubmittedAt:             s.SubmittedAt,
		UpdatedAt:               s.UpdatedAt,
	}
	if nominationID, ok := s.Owner.Respondent.NominationID(); ok {
		resp.NominationID = &nominationID
	}
	return resp
}

func ToProgressResponse(p progress.Progress) ProgressResponse {
	return ProgressResponse{Answered: p.Answered, Total: p.Total, Percentage: p.Percentage}
}

func ToPositionResponse(p progress.Position) PositionResponse {
	return PositionResponse{StepIndex: p.StepIndex, QuestionIndex: p.QuestionIndex}
}

func ToOpenSessionResponse(v *service.SessionView) *OpenSessionResponse {
	resp := &OpenSessionResponse{
		Session:   ToSessionResponse(v.Session),
		Steps:     make([]StepResponse, 0),
		Questions: make([]QuestionResponse, 0),
		Answers:   make(map[string]string, len(v.Answers)),
		Progress:  ToProgressResponse(v.Progress),
		Position:  ToPositionResponse(v.Position),
		Created:   v.Created,
	}
	if v.Assessment != nil {
		resp.AssessmentStatus = string(v.Assessment.Status)
	}
	if v.Catalog != nil {
		resp.QuestionSetName = v.Catalog.QuestionSet.Name
		for _, st := range v.Catalog.Steps {
			resp.Steps = append(resp.Steps, StepResponse{ID: st.ID, Title: st.Title, Order: st.Order})
		}
		for _, q := range v.Catalog.Questions {
			resp.Questions = append(resp.Questions, QuestionResponse{
				ID:       q.ID,
				StepID:   q.StepID,
				Type:     q.Type,
				Text:     q.Text,
				Order:    q.Order,
				Required: q.Required,
			})
		}
	}
	for questionID, text := range v.Answers {
		resp.Answers[strconv.FormatInt(questionID, 10)] = text
	}
	return resp
}

func ToAdvanceResponse(r *service.AdvanceResult) *AdvanceResponse {
	return &AdvanceResponse{
		Session:  ToSessionResponse(r.Session),
		Progress: ToProgressResponse(r.Progress),
		Position: ToPositionResponse(r.Position),
	}
}
