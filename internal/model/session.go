package model

import "time"

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

type RespondentType string

const (
	RespondentTypeParticipant RespondentType = "participant"
	RespondentTypeReviewer    RespondentType = "reviewer"
)

// RespondentRef identifies who answers a session: the participant themselves
// or the reviewer behind an accepted nomination. Build one with
// ParticipantRespondent or ReviewerRespondent.
type RespondentRef struct {
	kind          RespondentType
	participantID int64
	nominationID  int64
}

func ParticipantRespondent(participantID int64) RespondentRef {
	return RespondentRef{kind: RespondentTypeParticipant, participantID: participantID}
}

func ReviewerRespondent(nominationID int64) RespondentRef {
	return RespondentRef{kind: RespondentTypeReviewer, nominationID: nominationID}
}

func (r RespondentRef) Type() RespondentType {
	return r.kind
}

func (r RespondentRef) IsReviewer() bool {
	return r.kind == RespondentTypeReviewer
}

// ParticipantID is set only for participant respondents.
func (r RespondentRef) ParticipantID() (int64, bool) {
	return r.participantID, r.kind == RespondentTypeParticipant
}

// NominationID is set only for reviewer respondents.
func (r RespondentRef) NominationID() (int64, bool) {
	return r.nominationID, r.kind == RespondentTypeReviewer
}

// OwnerKey is unique per session.
type OwnerKey struct {
	Respondent              RespondentRef
	ParticipantAssessmentID int64
	QuestionSetID           int64
}

type ResponseSession struct {
	StartedAt         time.Time     `json:"started_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	SubmittedAt       *time.Time    `json:"submitted_at,omitempty"`
	LastQuestionID    *int64        `json:"last_question_id,omitempty"`
	LastStepID        *int64        `json:"last_step_id,omitempty"`
	Owner             OwnerKey      `json:"-"`
	Status            SessionStatus `json:"status"`
	ID                int64         `json:"id"`
	CompletionPercent int           `json:"completion_percent"`
}

func (s *ResponseSession) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// Response is one stored answer. IsAnswered implies a non-empty AnswerText.
// StepID and QuestionOrder are joined from the question definition on load.
type Response struct {
	UpdatedAt     time.Time `json:"updated_at"`
	AnswerText    *string   `json:"answer_text,omitempty"`
	StepID        *int64    `json:"step_id,omitempty"`
	SessionID     int64     `json:"session_id"`
	QuestionID    int64     `json:"question_id"`
	QuestionOrder int       `json:"question_order"`
	IsAnswered    bool      `json:"is_answered"`
}
