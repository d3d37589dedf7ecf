package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every record logged with a context that carries them.
// Services enrich the context once per operation so that nested calls do not have
// to repeat the ids.
type LogFields struct {
	ParticipantAssessmentID *int64
	SessionID               *int64
	NominationID            *int64
	QuestionSetID           *int64
	MessageID               *string // Redis stream message ID
	TaskType                *string
	Component               string // e.g. "engine.service.response"
}

// WithLogFields merges fields into the context. Newer non-nil values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored in ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ParticipantAssessmentID != nil {
		result.ParticipantAssessmentID = next.ParticipantAssessmentID
	}
	if next.SessionID != nil {
		result.SessionID = next.SessionID
	}
	if next.NominationID != nil {
		result.NominationID = next.NominationID
	}
	if next.QuestionSetID != nil {
		result.QuestionSetID = next.QuestionSetID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.TaskType != nil {
		result.TaskType = next.TaskType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v. Handy for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}
