package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "assessment-engine"

// SpanContext pairs a context with the span started on it.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan starts a child span of whatever trace ctx carries.
//
//	sc := logger.StartSpan(ctx, "worker.report_regeneration")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

// StartSpanFromTraceID links the new span to a trace id propagated through the
// task queue. An empty or malformed id starts a root span.
func StartSpanFromTraceID(ctx context.Context, traceIDStr string, name string, opts ...trace.SpanStartOption) *SpanContext {
	if traceIDStr == "" {
		return StartSpan(ctx, name, opts...)
	}

	traceID, err := trace.TraceIDFromHex(traceIDStr)
	if err != nil {
		return StartSpan(ctx, name, opts...)
	}

	remote := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})

	opts = append(opts, trace.WithLinks(trace.Link{SpanContext: remote}))
	ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
	return StartSpan(ctx, name, opts...)
}

// TraceID returns the hex trace id of the span in ctx, or "".
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// End completes the span. Safe to call more than once.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

func (sc *SpanContext) RecordError(err error) {
	if sc.span != nil && err != nil {
		sc.span.RecordError(err)
	}
}
