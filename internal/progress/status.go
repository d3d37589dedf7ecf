package progress

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

// DeriveStatus projects session and answer state onto the assessment status.
// session may be nil when the owner has never opened the form.
func DeriveStatus(session *model.ResponseSession, answeredCount int) model.AssessmentStatus {
	if session == nil {
		if answeredCount > 0 {
			return model.AssessmentStatusInProgress
		}
		return model.AssessmentStatusNotStarted
	}

	switch {
	case session.Status == model.SessionStatusCompleted || session.CompletionPercent == 100:
		return model.AssessmentStatusCompleted
	case (session.CompletionPercent > 0 && session.CompletionPercent < 100) || answeredCount > 0:
		return model.AssessmentStatusInProgress
	default:
		return model.AssessmentStatusNotStarted
	}
}
