package queue

type TaskType string

const (
	TaskTypeReportRegeneration TaskType = "report_regeneration"
	TaskTypeReviewerInvite     TaskType = "reviewer_invite"
)

// Report regeneration triggers.
const (
	ReasonAssessmentCompleted = "assessment_completed"
	ReasonReviewCompleted     = "review_completed"
)

// Task is a fire-and-forget side effect. Tasks are delivered at most once:
// the worker acknowledges before running them and never retries.
type Task struct {
	TaskType                TaskType
	ParticipantAssessmentID int64
	NominationID            *int64
	ExternalReviewerID      *int64
	Reason                  string
	TraceID                 string
}

func ReportRegenerationTask(participantAssessmentID int64, reason string) Task {
	return Task{
		TaskType:                TaskTypeReportRegeneration,
		ParticipantAssessmentID: participantAssessmentID,
		Reason:                  reason,
	}
}

func ReviewerInviteTask(participantAssessmentID, externalReviewerID int64) Task {
	return Task{
		TaskType:                TaskTypeReviewerInvite,
		ParticipantAssessmentID: participantAssessmentID,
		ExternalReviewerID:      &externalReviewerID,
	}
}
