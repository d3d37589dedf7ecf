package handler_test

import (
	"context"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
)

type mockResponseService struct {
	openFn     func(ctx context.Context, req service.OpenSessionRequest) (*service.SessionView, error)
	advanceFn  func(ctx context.Context, sessionID int64, input service.AnswerInput) (*service.AdvanceResult, error)
	completeFn func(ctx context.Context, sessionID int64, input service.AnswerInput) (*service.AdvanceResult, error)
	retakeFn   func(ctx context.Context, sessionID int64, caller service.Caller) (*model.ResponseSession, error)
	progressFn func(ctx context.Context, sessionID int64, caller service.Caller) (progress.Progress, error)
	resumeFn   func(ctx context.Context, sessionID int64, caller service.Caller) (progress.Position, error)
}

func (m *mockResponseService) Open(ctx context.Context, req service.OpenSessionRequest) (*service.SessionView, error) {
	if m.openFn != nil {
		return m.openFn(ctx, req)
	}
	return nil, nil
}

func (m *mockResponseService) Advance(ctx context.Context, sessionID int64, input service.AnswerInput) (*service.AdvanceResult, error) {
	if m.advanceFn != nil {
		return m.advanceFn(ctx, sessionID, input)
	}
	return nil, nil
}

func (m *mockResponseService) Complete(ctx context.Context, sessionID int64, input service.AnswerInput) (*service.AdvanceResult, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, sessionID, input)
	}
	return nil, nil
}

func (m *mockResponseService) Retake(ctx context.Context, sessionID int64, caller service.Caller) (*model.ResponseSession, error) {
	if m.retakeFn != nil {
		return m.retakeFn(ctx, sessionID, caller)
	}
	return nil, nil
}

func (m *mockResponseService) Progress(ctx context.Context, sessionID int64, caller service.Caller) (progress.Progress, error) {
	if m.progressFn != nil {
		return m.progressFn(ctx, sessionID, caller)
	}
	return progress.Progress{}, nil
}

func (m *mockResponseService) Resume(ctx context.Context, sessionID int64, caller service.Caller) (progress.Position, error) {
	if m.resumeFn != nil {
		return m.resumeFn(ctx, sessionID, caller)
	}
	return progress.Position{}, nil
}

type mockNominationService struct {
	createFn          func(ctx context.Context, req service.CreateNominationsRequest) (*service.CreateNominationsResult, error)
	acceptFn          func(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error)
	rejectFn          func(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error)
	deleteFn          func(ctx context.Context, nominationID, nominatorID int64) error
	listFn            func(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error)
	listForReviewerFn func(ctx context.Context, userID int64) ([]model.ReviewerNomination, error)
	summaryFn         func(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error)
}

func (m *mockNominationService) Create(ctx context.Context, req service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, nil
}

func (m *mockNominationService) Accept(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, nominationID, actor)
	}
	return nil, nil
}

func (m *mockNominationService) Reject(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, nominationID, actor)
	}
	return nil, nil
}

func (m *mockNominationService) Delete(ctx context.Context, nominationID, nominatorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, nominationID, nominatorID)
	}
	return nil
}

func (m *mockNominationService) List(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, participantAssessmentID)
	}
	return nil, nil
}

func (m *mockNominationService) ListForReviewer(ctx context.Context, userID int64) ([]model.ReviewerNomination, error) {
	if m.listForReviewerFn != nil {
		return m.listForReviewerFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNominationService) Summary(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, participantAssessmentID)
	}
	return nil, nil
}
