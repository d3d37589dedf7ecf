package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/notify"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
)

type Config struct {
	Consumer          Consumer
	Reports           ReportStore
	ExternalReviewers ExternalReviewerReader
	Regenerator       notify.ReportRegenerator
	Mailer            notify.Mailer
	ErrorBackoff      time.Duration
}

// Worker runs side-effect tasks at most once. Every message is acknowledged
// before its task runs and a failed task is logged and dropped.
type Worker struct {
	consumer          Consumer
	reports           ReportStore
	externalReviewers ExternalReviewerReader
	regenerator       notify.ReportRegenerator
	mailer            notify.Mailer
	errorBackoff      time.Duration

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(cfg Config) *Worker {
	backoff := cfg.ErrorBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	return &Worker{
		consumer:          cfg.Consumer,
		reports:           cfg.Reports,
		externalReviewers: cfg.ExternalReviewers,
		regenerator:       cfg.Regenerator,
		mailer:            cfg.Mailer,
		errorBackoff:      backoff,
		stopCh:            make(chan struct{}),
		stoppedCh:         make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				select {
				case <-ctx.Done():
				case <-w.stopCh:
				case <-time.After(w.errorBackoff):
				}
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.consumer.Ack(ctx, msg); err != nil {
			// Pending entries are never reclaimed, so the task still runs once.
			slog.WarnContext(ctx, "failed to ACK message",
				"error", err,
				"message_id", msg.ID)
		}

		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "task failed, dropping",
				"error", err,
				"message_id", msg.ID,
				"task_type", msg.Task.TaskType,
				"participant_assessment_id", msg.Task.ParticipantAssessmentID)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in task processing",
				"panic", r,
				"message_id", msg.ID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage runs one task. It does not acknowledge the message.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	task := msg.Task
	taskType := string(task.TaskType)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ParticipantAssessmentID: &task.ParticipantAssessmentID,
		NominationID:            task.NominationID,
		MessageID:               &msg.ID,
		TaskType:                &taskType,
		Component:               "engine.worker",
	})

	sc := logger.StartSpanFromTraceID(ctx, task.TraceID, "worker."+taskType)
	defer sc.End()
	ctx = sc.Context()

	var err error
	switch task.TaskType {
	case queue.TaskTypeReportRegeneration:
		err = w.regenerateReport(ctx, task)
	case queue.TaskTypeReviewerInvite:
		err = w.sendInvite(ctx, task)
	default:
		err = fmt.Errorf("unknown task type %q", task.TaskType)
	}
	sc.RecordError(err)
	return err
}

func (w *Worker) regenerateReport(ctx context.Context, task queue.Task) error {
	if err := w.regenerator.Regenerate(ctx, task.ParticipantAssessmentID, task.Reason); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			return nil
		}
		return fmt.Errorf("regenerating report: %w", err)
	}

	if err := w.reports.MarkReportGenerated(ctx, task.ParticipantAssessmentID, time.Now().UTC()); err != nil {
		return fmt.Errorf("recording report generation: %w", err)
	}

	slog.InfoContext(ctx, "report regenerated", "reason", task.Reason)
	return nil
}

func (w *Worker) sendInvite(ctx context.Context, task queue.Task) error {
	if task.ExternalReviewerID == nil {
		return fmt.Errorf("reviewer invite without external reviewer")
	}

	reviewer, err := w.externalReviewers.GetByID(ctx, *task.ExternalReviewerID)
	if err != nil {
		return fmt.Errorf("getting external reviewer: %w", err)
	}

	if err := w.mailer.SendReviewerInvite(ctx, reviewer.Email, reviewer.InviteToken, task.ParticipantAssessmentID, reviewer.ID); err != nil {
		return fmt.Errorf("sending reviewer invite: %w", err)
	}
	return nil
}
