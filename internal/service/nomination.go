package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/nomination"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
	"github.com/google/uuid"
)

type CreateNominationsRequest struct {
	ReviewerIDs        []int64
	ExternalEmails     []string
	CohortAssessmentID int64
	ParticipantID      int64
	NominatedByID      int64
}

// InviteFailure is one external address that could not be nominated.
type InviteFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type CreateNominationsResult struct {
	Created                 []model.ReviewerNomination `json:"created"`
	Skipped                 []model.ReviewerRef        `json:"skipped"`
	Failures                []InviteFailure            `json:"failures"`
	ParticipantAssessmentID int64                      `json:"participant_assessment_id"`
	Quota                   int                        `json:"quota"`
	Remaining               int                        `json:"remaining"`
}

// Partial reports whether some requested addresses failed while others were nominated.
func (r *CreateNominationsResult) Partial() bool {
	return len(r.Failures) > 0 && len(r.Created) > 0
}

type NominationService interface {
	Create(ctx context.Context, req CreateNominationsRequest) (*CreateNominationsResult, error)
	Accept(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error)
	Reject(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error)
	Delete(ctx context.Context, nominationID, nominatorID int64) error
	List(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error)
	ListForReviewer(ctx context.Context, userID int64) ([]model.ReviewerNomination, error)
	Summary(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error)
}

type nominationService struct {
	resolver          *catalog.Resolver
	quota             *nomination.QuotaPolicy
	assessments       store.ParticipantAssessmentStore
	nominations       store.NominationStore
	externalReviewers store.ExternalReviewerStore
	txRunner          TxRunner
	producer          queue.Producer
}

func NewNominationService(
	resolver *catalog.Resolver,
	quota *nomination.QuotaPolicy,
	assessments store.ParticipantAssessmentStore,
	nominations store.NominationStore,
	externalReviewers store.ExternalReviewerStore,
	txRunner TxRunner,
	producer queue.Producer,
) NominationService {
	return &nominationService{
		resolver:          resolver,
		quota:             quota,
		assessments:       assessments,
		nominations:       nominations,
		externalReviewers: externalReviewers,
		txRunner:          txRunner,
		producer:          producer,
	}
}

// Create nominates a batch of reviewers for a participant. The batch is
// rejected whole when it would exceed the quota. Reviewers already holding
// an active nomination are skipped, and external addresses that fail are
// collected without aborting the rest.
func (s *nominationService) Create(ctx context.Context, req CreateNominationsRequest) (*CreateNominationsResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "engine.service.nomination"})

	ca, err := s.resolver.CohortAssessment(ctx, req.CohortAssessmentID)
	if err != nil {
		return nil, resolveErr(err)
	}
	set, err := s.resolver.ResolveQuestionSet(ctx, ca)
	if err != nil {
		return nil, resolveErr(err)
	}
	quota, err := s.quota.Quota(set)
	if err != nil {
		return nil, fmt.Errorf("resolving reviewer quota: %w", err)
	}

	pa := &model.ParticipantAssessment{
		ID:                       id.New(),
		ParticipantID:            req.ParticipantID,
		CohortAssessmentID:       ca.ID,
		AllowReviewerNominations: ca.AllowReviewerNominations,
	}
	if err := s.assessments.Ensure(ctx, pa); err != nil {
		return nil, fmt.Errorf("%w: ensuring participant assessment: %w", ErrWriteFailed, err)
	}
	if !pa.AllowReviewerNominations {
		return nil, ErrNominationsDisabled
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ParticipantAssessmentID: &pa.ID})

	result := &CreateNominationsResult{ParticipantAssessmentID: pa.ID, Quota: quota}
	internalIDs := uniqueIDs(req.ReviewerIDs)
	emails := normalizeEmails(req.ExternalEmails, result)
	if len(internalIDs) == 0 && len(emails) == 0 && len(result.Failures) == 0 {
		return nil, ErrEmptyNominationBatch
	}

	active, err := s.nominations.ListActive(ctx, pa.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing active nominations: %w", ErrStateUnavailable, err)
	}
	result.Remaining = max(0, quota-len(active))
	activeSet := reviewerSet(active)

	var candidates []model.ReviewerRef
	for _, userID := range internalIDs {
		ref := model.InternalReviewer(userID)
		if _, ok := activeSet[ref]; ok {
			result.Skipped = append(result.Skipped, ref)
			continue
		}
		candidates = append(candidates, ref)
	}

	var newEmails []string
	for _, email := range emails {
		existing, err := s.externalReviewers.GetByEmail(ctx, ca.ClientID, email)
		switch {
		case err == nil:
			ref := model.ExternalReviewerRef(existing.ID)
			if _, ok := activeSet[ref]; ok {
				result.Skipped = append(result.Skipped, ref)
				continue
			}
		case errors.Is(err, store.ErrNotFound):
		default:
			result.Failures = append(result.Failures, InviteFailure{Email: email, Reason: "lookup failed"})
			slog.WarnContext(ctx, "external reviewer lookup failed", "error", err, "email", email)
			continue
		}
		newEmails = append(newEmails, email)
	}

	requested := len(candidates) + len(newEmails)
	if requested == 0 {
		return result, emptyBatchErr(result)
	}
	if len(active)+requested > quota {
		return nil, newQuotaExceededError(quota, len(active), requested)
	}

	for _, email := range newEmails {
		reviewer := &model.ExternalReviewer{
			ID:          id.New(),
			ClientID:    ca.ClientID,
			Email:       email,
			InviteToken: uuid.NewString(),
		}
		created, err := s.externalReviewers.Upsert(ctx, reviewer)
		if err != nil {
			result.Failures = append(result.Failures, InviteFailure{Email: email, Reason: "could not create reviewer"})
			slog.WarnContext(ctx, "external reviewer upsert failed", "error", err, "email", email)
			continue
		}
		ref := model.ExternalReviewerRef(reviewer.ID)
		if _, ok := activeSet[ref]; ok {
			result.Skipped = append(result.Skipped, ref)
			continue
		}
		if !created {
			slog.DebugContext(ctx, "reusing external reviewer", "external_reviewer_id", reviewer.ID)
		}
		candidates = append(candidates, ref)
	}
	if len(candidates) == 0 {
		return result, emptyBatchErr(result)
	}

	var (
		inserted    []model.ReviewerNomination
		raced       []model.ReviewerRef
		activeAfter int
	)
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.ParticipantAssessments().Lock(ctx, pa.ID); err != nil {
			return fmt.Errorf("locking participant assessment: %w", err)
		}

		current, err := sp.Nominations().ListActive(ctx, pa.ID)
		if err != nil {
			return fmt.Errorf("listing active nominations: %w", err)
		}
		currentSet := reviewerSet(current)

		var pending []model.ReviewerRef
		for _, ref := range candidates {
			if _, ok := currentSet[ref]; ok {
				raced = append(raced, ref)
				continue
			}
			pending = append(pending, ref)
		}
		if len(current)+len(pending) > quota {
			return newQuotaExceededError(quota, len(current), len(pending))
		}

		for _, ref := range pending {
			n := &model.ReviewerNomination{
				ID:                      id.New(),
				ParticipantAssessmentID: pa.ID,
				Reviewer:                ref,
				NominatedByID:           req.NominatedByID,
				RequestStatus:           model.RequestStatusPending,
			}
			if err := sp.Nominations().Create(ctx, n); err != nil {
				return fmt.Errorf("creating nomination: %w", err)
			}
			inserted = append(inserted, *n)
		}
		activeAfter = len(current) + len(pending)
		return nil
	})
	if err != nil {
		var quotaErr *QuotaExceededError
		if errors.As(err, &quotaErr) {
			return nil, quotaErr
		}
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	result.Skipped = append(result.Skipped, raced...)
	result.Created = inserted
	result.Remaining = max(0, quota-activeAfter)
	if len(inserted) == 0 {
		return result, emptyBatchErr(result)
	}

	// Every committed external nomination gets its own invite. Reviewer rows
	// outlive a rolled back batch, so a retry must not depend on creating them.
	for _, n := range inserted {
		if !n.Reviewer.IsExternal() {
			continue
		}
		task := queue.ReviewerInviteTask(pa.ID, n.Reviewer.ID)
		task.NominationID = &n.ID
		task.TraceID = logger.TraceID(ctx)
		if err := s.producer.Enqueue(ctx, task); err != nil {
			slog.WarnContext(ctx, "failed to enqueue reviewer invite",
				"error", err,
				"external_reviewer_id", n.Reviewer.ID)
		}
	}

	slog.InfoContext(ctx, "reviewer nominations created",
		"created", len(inserted),
		"skipped", len(result.Skipped),
		"failed", len(result.Failures),
		"remaining", result.Remaining)

	return result, nil
}

func (s *nominationService) Accept(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
	return s.transition(ctx, nominationID, actor, model.RequestStatusAccepted)
}

func (s *nominationService) Reject(ctx context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
	return s.transition(ctx, nominationID, actor, model.RequestStatusRejected)
}

func (s *nominationService) transition(ctx context.Context, nominationID int64, actor model.ReviewerRef, status model.RequestStatus) (*model.ReviewerNomination, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		NominationID: &nominationID,
		Component:    "engine.service.nomination",
	})

	n, err := s.nomination(ctx, nominationID)
	if err != nil {
		return nil, err
	}
	if n.Reviewer != actor {
		return nil, ErrNotNominatedReviewer
	}
	if n.RequestStatus != model.RequestStatusPending {
		return nil, ErrNominationNotPending
	}

	updated, err := s.nominations.UpdateRequestStatus(ctx, nominationID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNominationNotPending
		}
		return nil, fmt.Errorf("%w: updating nomination: %w", ErrWriteFailed, err)
	}

	slog.InfoContext(ctx, "nomination request answered", "request_status", status)
	return updated, nil
}

func (s *nominationService) Delete(ctx context.Context, nominationID, nominatorID int64) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		NominationID: &nominationID,
		Component:    "engine.service.nomination",
	})

	n, err := s.nomination(ctx, nominationID)
	if err != nil {
		return err
	}
	if n.NominatedByID != nominatorID {
		return ErrNotNominator
	}
	if n.RequestStatus != model.RequestStatusPending {
		return ErrNominationNotPending
	}

	deleted, err := s.nominations.DeletePending(ctx, nominationID, nominatorID)
	if err != nil {
		return fmt.Errorf("%w: deleting nomination: %w", ErrWriteFailed, err)
	}
	if !deleted {
		return ErrNominationNotPending
	}

	slog.InfoContext(ctx, "pending nomination deleted")
	return nil
}

func (s *nominationService) List(ctx context.Context, participantAssessmentID int64) ([]model.NominationView, error) {
	views, err := s.nominations.ListByParticipantAssessment(ctx, participantAssessmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing nominations: %w", ErrStateUnavailable, err)
	}
	return views, nil
}

func (s *nominationService) ListForReviewer(ctx context.Context, userID int64) ([]model.ReviewerNomination, error) {
	nominations, err := s.nominations.ListByReviewer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing reviewer nominations: %w", ErrStateUnavailable, err)
	}
	return nominations, nil
}

func (s *nominationService) Summary(ctx context.Context, participantAssessmentID int64) (*model.NominationSummary, error) {
	pa, err := s.assessments.GetByID(ctx, participantAssessmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("%w: getting participant assessment: %w", ErrStateUnavailable, err)
	}

	ca, err := s.resolver.CohortAssessment(ctx, pa.CohortAssessmentID)
	if err != nil {
		return nil, resolveErr(err)
	}
	set, err := s.resolver.ResolveQuestionSet(ctx, ca)
	if err != nil {
		return nil, resolveErr(err)
	}
	quota, err := s.quota.Quota(set)
	if err != nil {
		return nil, fmt.Errorf("resolving reviewer quota: %w", err)
	}

	summary, err := s.nominations.Summary(ctx, participantAssessmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: counting nominations: %w", ErrStateUnavailable, err)
	}
	summary.Quota = quota
	summary.Remaining = max(0, quota-summary.Active)
	return summary, nil
}

func (s *nominationService) nomination(ctx context.Context, nominationID int64) (*model.ReviewerNomination, error) {
	n, err := s.nominations.GetByID(ctx, nominationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNominationNotFound
		}
		return nil, fmt.Errorf("%w: getting nomination: %w", ErrStateUnavailable, err)
	}
	return n, nil
}

func emptyBatchErr(result *CreateNominationsResult) error {
	if len(result.Failures) > 0 {
		return ErrAllInvitesFailed
	}
	return ErrAllDuplicates
}

func reviewerSet(nominations []model.ReviewerNomination) map[model.ReviewerRef]struct{} {
	set := make(map[model.ReviewerRef]struct{}, len(nominations))
	for _, n := range nominations {
		set[n.Reviewer] = struct{}{}
	}
	return set
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// normalizeEmails dedupes addresses case-insensitively and records invalid
// ones as failures on result.
func normalizeEmails(raw []string, result *CreateNominationsResult) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, r := range raw {
		email, err := nomination.NormalizeEmail(r)
		if err != nil {
			result.Failures = append(result.Failures, InviteFailure{Email: r, Reason: err.Error()})
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}
