package worker_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/notify"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx         context.Context
		log         events
		consumer    *mockConsumer
		reports     *mockReportStore
		reviewers   *mockExternalReviewers
		regenerator *mockRegenerator
		mailer      *mockMailer
		w           *worker.Worker
	)

	message := func(id string, task queue.Task) queue.Message {
		return queue.Message{ID: id, Task: task}
	}

	// runOnce feeds one batch through Run and stops it on the next read.
	runOnce := func(batch ...queue.Message) error {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		reads := 0
		consumer.readFn = func(context.Context) ([]queue.Message, error) {
			reads++
			if reads == 1 {
				return batch, nil
			}
			cancel()
			return nil, nil
		}
		return w.Run(runCtx)
	}

	BeforeEach(func() {
		ctx = context.Background()
		log = nil
		consumer = &mockConsumer{log: &log}
		reports = &mockReportStore{}
		reviewers = &mockExternalReviewers{}
		regenerator = &mockRegenerator{log: &log}
		mailer = &mockMailer{log: &log}
		w = worker.New(worker.Config{
			Consumer:          consumer,
			Reports:           reports,
			ExternalReviewers: reviewers,
			Regenerator:       regenerator,
			Mailer:            mailer,
			ErrorBackoff:      time.Millisecond,
		})
	})

	It("acknowledges each message before running its task", func() {
		err := runOnce(
			message("1-0", queue.ReportRegenerationTask(42, queue.ReasonAssessmentCompleted)),
			message("2-0", queue.ReviewerInviteTask(42, 9)),
		)

		Expect(err).To(MatchError(context.Canceled))
		Expect(log).To(Equal(events{
			"ack:1-0",
			"regenerate:" + queue.ReasonAssessmentCompleted,
			"ack:2-0",
			"invite:peer@example.com",
		}))
	})

	It("drops a failed task without retrying it", func() {
		regenerator.regenerateFn = func(context.Context, int64, string) error {
			return notify.ErrUpstream
		}

		err := runOnce(
			message("1-0", queue.ReportRegenerationTask(42, queue.ReasonReviewCompleted)),
			message("2-0", queue.ReviewerInviteTask(42, 9)),
		)

		Expect(err).To(MatchError(context.Canceled))
		Expect(reports.marked).To(BeEmpty())
		Expect(mailer.sent).To(HaveLen(1))
		Expect(log).To(HaveLen(4))
	})

	It("keeps running after a panicking task", func() {
		mailer.sendFn = func(context.Context, string, string) error {
			panic("boom")
		}

		err := runOnce(
			message("1-0", queue.ReviewerInviteTask(42, 9)),
			message("2-0", queue.ReportRegenerationTask(42, queue.ReasonAssessmentCompleted)),
		)

		Expect(err).To(MatchError(context.Canceled))
		Expect(reports.marked).To(ConsistOf(int64(42)))
	})

	It("backs off and keeps reading after a read error", func() {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		reads := 0
		consumer.readFn = func(context.Context) ([]queue.Message, error) {
			reads++
			if reads == 1 {
				return nil, errors.New("connection reset")
			}
			cancel()
			return nil, nil
		}

		Expect(w.Run(runCtx)).To(MatchError(context.Canceled))
		Expect(reads).To(Equal(2))
	})

	It("returns nil when stopped", func() {
		consumer.readFn = func(context.Context) ([]queue.Message, error) {
			time.Sleep(time.Millisecond)
			return nil, nil
		}
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		w.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})

	Describe("ProcessMessage", func() {
		It("records the report once regenerated", func() {
			Expect(w.ProcessMessage(ctx, message("1-0", queue.ReportRegenerationTask(42, queue.ReasonAssessmentCompleted)))).To(Succeed())
			Expect(reports.marked).To(ConsistOf(int64(42)))
		})

		It("does not record a report when no report service is configured", func() {
			regenerator.regenerateFn = func(context.Context, int64, string) error {
				return notify.ErrNotConfigured
			}

			Expect(w.ProcessMessage(ctx, message("1-0", queue.ReportRegenerationTask(42, queue.ReasonAssessmentCompleted)))).To(Succeed())
			Expect(reports.marked).To(BeEmpty())
		})

		It("mails the invite token to the external reviewer", func() {
			reviewers.getByIDFn = func(_ context.Context, id int64) (*model.ExternalReviewer, error) {
				return &model.ExternalReviewer{ID: id, Email: "jane@example.com", InviteToken: "tok-9"}, nil
			}

			Expect(w.ProcessMessage(ctx, message("1-0", queue.ReviewerInviteTask(42, 9)))).To(Succeed())
			Expect(mailer.sent).To(ConsistOf(sentInvite{to: "jane@example.com", token: "tok-9", paID: 42, reviewer: 9}))
		})

		It("fails when the external reviewer is gone", func() {
			reviewers.getByIDFn = func(context.Context, int64) (*model.ExternalReviewer, error) {
				return nil, errors.New("not found")
			}

			Expect(w.ProcessMessage(ctx, message("1-0", queue.ReviewerInviteTask(42, 9)))).NotTo(Succeed())
			Expect(mailer.sent).To(BeEmpty())
		})

		It("rejects unknown task types", func() {
			Expect(w.ProcessMessage(ctx, message("1-0", queue.Task{TaskType: "cleanup"}))).NotTo(Succeed())
		})
	})
})
