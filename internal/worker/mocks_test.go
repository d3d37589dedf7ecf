package worker_test

import (
	"context"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
)

// events records the order in which collaborators were called.
type events []string

type mockConsumer struct {
	readFn func(ctx context.Context) ([]queue.Message, error)
	ackFn  func(ctx context.Context, msg queue.Message) error
	log    *events
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return nil, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	*m.log = append(*m.log, "ack:"+msg.ID)
	if m.ackFn != nil {
		return m.ackFn(ctx, msg)
	}
	return nil
}

type mockReportStore struct {
	markFn func(ctx context.Context, id int64, at time.Time) error
	marked []int64
}

func (m *mockReportStore) MarkReportGenerated(ctx context.Context, id int64, at time.Time) error {
	if m.markFn != nil {
		if err := m.markFn(ctx, id, at); err != nil {
			return err
		}
	}
	m.marked = append(m.marked, id)
	return nil
}

type mockExternalReviewers struct {
	getByIDFn func(ctx context.Context, id int64) (*model.ExternalReviewer, error)
}

func (m *mockExternalReviewers) GetByID(ctx context.Context, id int64) (*model.ExternalReviewer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.ExternalReviewer{ID: id, Email: "peer@example.com", InviteToken: "tok"}, nil
}

type mockRegenerator struct {
	regenerateFn func(ctx context.Context, paID int64, reason string) error
	log          *events
}

func (m *mockRegenerator) Regenerate(ctx context.Context, paID int64, reason string) error {
	*m.log = append(*m.log, "regenerate:"+reason)
	if m.regenerateFn != nil {
		return m.regenerateFn(ctx, paID, reason)
	}
	return nil
}

type sentInvite struct {
	to, token      string
	paID, reviewer int64
}

type mockMailer struct {
	sendFn func(ctx context.Context, to, token string) error
	sent   []sentInvite
	log    *events
}

func (m *mockMailer) SendReviewerInvite(ctx context.Context, to, token string, paID, reviewerID int64) error {
	*m.log = append(*m.log, "invite:"+to)
	if m.sendFn != nil {
		if err := m.sendFn(ctx, to, token); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, sentInvite{to: to, token: token, paID: paID, reviewer: reviewerID})
	return nil
}
