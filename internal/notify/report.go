package notify

import (
	"context"
	"log/slog"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
)

type ReportRegenerator interface {
	Regenerate(ctx context.Context, participantAssessmentID int64, reason string) error
}

type httpReportRegenerator struct {
	client     HTTPClient
	serviceURL string
}

func NewReportRegenerator(cfg config.ReportsConfig, client HTTPClient) ReportRegenerator {
	if !cfg.Enabled() {
		return logReportRegenerator{}
	}
	if client == nil {
		client = newHTTPClient(cfg.Timeout)
	}
	return &httpReportRegenerator{client: client, serviceURL: cfg.ServiceURL}
}

func (r *httpReportRegenerator) Regenerate(ctx context.Context, participantAssessmentID int64, reason string) error {
	return postJSON(ctx, r.client, r.serviceURL, map[string]any{
		"participant_assessment_id": participantAssessmentID,
		"reason":                    reason,
	})
}

type logReportRegenerator struct{}

func (logReportRegenerator) Regenerate(ctx context.Context, participantAssessmentID int64, reason string) error {
	slog.InfoContext(ctx, "report service not configured, skipping regeneration",
		"participant_assessment_id", participantAssessmentID,
		"reason", reason)
	return ErrNotConfigured
}
