package logger

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
)

// Setup installs the process-wide slog handler for the given config.
func Setup(cfg config.Config) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level(cfg)}

	switch {
	case cfg.IsProduction() && cfg.OTel.Enabled():
		handler = otelslog.NewHandler(
			cfg.OTel.ServiceName,
			otelslog.WithLoggerProvider(global.GetLoggerProvider()),
		)
	case cfg.IsProduction():
		handler = NewTraceHandler(slog.NewJSONHandler(os.Stdout, opts))
	default:
		handler = NewTraceHandler(slog.NewTextHandler(os.Stdout, opts))
	}

	slog.SetDefault(slog.New(handler))
}

// level honours LOG_LEVEL and otherwise logs debug in development so status
// repairs show up locally.
func level(cfg config.Config) slog.Level {
	var lvl slog.Level
	if cfg.LogLevel != "" && lvl.UnmarshalText([]byte(cfg.LogLevel)) == nil {
		return lvl
	}
	if cfg.IsDevelopment() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// TraceHandler decorates records with the active span and the context LogFields.
type TraceHandler struct {
	slog.Handler
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		sc := span.SpanContext()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	fields := GetLogFields(ctx)
	if fields.ParticipantAssessmentID != nil {
		r.AddAttrs(slog.Int64("participant_assessment_id", *fields.ParticipantAssessmentID))
	}
	if fields.SessionID != nil {
		r.AddAttrs(slog.Int64("session_id", *fields.SessionID))
	}
	if fields.NominationID != nil {
		r.AddAttrs(slog.Int64("nomination_id", *fields.NominationID))
	}
	if fields.QuestionSetID != nil {
		r.AddAttrs(slog.Int64("question_set_id", *fields.QuestionSetID))
	}
	if fields.MessageID != nil {
		r.AddAttrs(slog.String("message_id", *fields.MessageID))
	}
	if fields.TaskType != nil {
		r.AddAttrs(slog.String("task_type", *fields.TaskType))
	}
	if fields.Component != "" {
		r.AddAttrs(slog.String("component", fields.Component))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name)}
}
