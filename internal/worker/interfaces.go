package worker

import (
	"context"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
)

// Consumer abstracts the task stream for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
}

// ReportStore records when a participant's report was last produced.
type ReportStore interface {
	MarkReportGenerated(ctx context.Context, participantAssessmentID int64, at time.Time) error
}

type ExternalReviewerReader interface {
	GetByID(ctx context.Context, id int64) (*model.ExternalReviewer, error)
}
