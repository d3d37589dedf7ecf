package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
)

// OpenSessionRequest identifies whose session to open. Participant sessions
// are addressed by cohort assessment; reviewer sessions by nomination, and
// Reviewer must be the nominated reviewer.
type OpenSessionRequest struct {
	Respondent         model.RespondentRef
	Reviewer           model.ReviewerRef
	CohortAssessmentID int64
}

// Caller is whoever acts on an existing session. Reviewer is the caller's
// own identity and must match the nomination of a reviewer session.
type Caller struct {
	Respondent model.RespondentRef
	Reviewer   model.ReviewerRef
}

// AnswerInput is one answer written while advancing or completing.
// A blank AnswerText clears a previously saved answer.
type AnswerInput struct {
	Respondent model.RespondentRef
	Reviewer   model.ReviewerRef
	AnswerText string
	QuestionID int64
}

func (in AnswerInput) caller() Caller {
	return Caller{Respondent: in.Respondent, Reviewer: in.Reviewer}
}

type SessionView struct {
	Session    *model.ResponseSession       `json:"session"`
	Assessment *model.ParticipantAssessment `json:"assessment"`
	Catalog    *catalog.Catalog             `json:"-"`
	Answers    map[int64]string             `json:"answers"`
	Progress   progress.Progress            `json:"progress"`
	Position   progress.Position            `json:"position"`
	Created    bool                         `json:"created"`
}

type AdvanceResult struct {
	Session  *model.ResponseSession `json:"session"`
	Progress progress.Progress      `json:"progress"`
	Position progress.Position      `json:"position"`
}

type ResponseService interface {
	Open(ctx context.Context, req OpenSessionRequest) (*SessionView, error)
	Advance(ctx context.Context, sessionID int64, input AnswerInput) (*AdvanceResult, error)
	Complete(ctx context.Context, sessionID int64, input AnswerInput) (*AdvanceResult, error)
	Retake(ctx context.Context, sessionID int64, caller Caller) (*model.ResponseSession, error)
	Progress(ctx context.Context, sessionID int64, caller Caller) (progress.Progress, error)
	Resume(ctx context.Context, sessionID int64, caller Caller) (progress.Position, error)
}

type responseService struct {
	resolver          *catalog.Resolver
	assessments       store.ParticipantAssessmentStore
	sessions          store.SessionStore
	responses         store.ResponseStore
	nominations       store.NominationStore
	externalReviewers store.ExternalReviewerStore
	txRunner          TxRunner
	producer          queue.Producer
}

func NewResponseService(
	resolver *catalog.Resolver,
	assessments store.ParticipantAssessmentStore,
	sessions store.SessionStore,
	responses store.ResponseStore,
	nominations store.NominationStore,
	externalReviewers store.ExternalReviewerStore,
	txRunner TxRunner,
	producer queue.Producer,
) ResponseService {
	return &responseService{
		resolver:          resolver,
		assessments:       assessments,
		sessions:          sessions,
		responses:         responses,
		nominations:       nominations,
		externalReviewers: externalReviewers,
		txRunner:          txRunner,
		producer:          producer,
	}
}

func (s *responseService) Open(ctx context.Context, req OpenSessionRequest) (*SessionView, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "engine.service.response"})

	var (
		pa                 *model.ParticipantAssessment
		participantID      int64
		cohortAssessmentID = req.CohortAssessmentID
	)

	switch req.Respondent.Type() {
	case model.RespondentTypeParticipant:
		participantID, _ = req.Respondent.ParticipantID()
	case model.RespondentTypeReviewer:
		nominationID, _ := req.Respondent.NominationID()
		nomination, err := s.acceptedNomination(ctx, nominationID, req.Reviewer)
		if err != nil {
			return nil, err
		}
		pa, err = s.assessments.GetByID(ctx, nomination.ParticipantAssessmentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrAssessmentNotFound
			}
			return nil, fmt.Errorf("%w: getting participant assessment: %w", ErrStateUnavailable, err)
		}
		cohortAssessmentID = pa.CohortAssessmentID
	default:
		return nil, ErrInvalidRespondent
	}

	c, ca, err := s.resolver.Resolve(ctx, cohortAssessmentID)
	if err != nil {
		return nil, resolveErr(err)
	}

	if pa == nil {
		pa = &model.ParticipantAssessment{
			ID:                       id.New(),
			ParticipantID:            participantID,
			CohortAssessmentID:       ca.ID,
			AllowReviewerNominations: ca.AllowReviewerNominations,
		}
		if err := s.assessments.Ensure(ctx, pa); err != nil {
			return nil, fmt.Errorf("%w: ensuring participant assessment: %w", ErrWriteFailed, err)
		}
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ParticipantAssessmentID: &pa.ID,
		QuestionSetID:           &c.QuestionSet.ID,
	})

	session := &model.ResponseSession{
		ID: id.New(),
		Owner: model.OwnerKey{
			ParticipantAssessmentID: pa.ID,
			QuestionSetID:           c.QuestionSet.ID,
			Respondent:              req.Respondent,
		},
	}
	created, err := s.sessions.Ensure(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("%w: ensuring session: %w", ErrWriteFailed, err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{SessionID: &session.ID})

	var responses []model.Response
	if !created {
		responses, err = s.responses.LoadAll(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: loading responses: %w", ErrStateUnavailable, err)
		}
	}

	current := progress.Calculate(c, responses)
	view := &SessionView{
		Session:    session,
		Assessment: pa,
		Catalog:    c,
		Answers:    answerMap(responses),
		Progress:   current,
		Position:   progress.ResolveResume(session, c, progress.AnsweredSet(c, responses)),
		Created:    created,
	}

	if !req.Respondent.IsReviewer() {
		s.repairStatus(ctx, c, pa, session, current.Answered)
	}

	slog.InfoContext(ctx, "response session opened",
		"created", created,
		"respondent_type", req.Respondent.Type(),
		"answered", current.Answered,
		"total", current.Total)

	return view, nil
}

func (s *responseService) Advance(ctx context.Context, sessionID int64, input AnswerInput) (*AdvanceResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: &sessionID,
		Component: "engine.service.response",
	})

	session, err := s.ownedSession(ctx, sessionID, input.caller())
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	c, responses, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	question, ok := c.Question(input.QuestionID)
	if !ok {
		return nil, ErrQuestionNotInCatalog
	}

	before := progress.Calculate(c, responses)
	if err := s.responses.Upsert(ctx, sessionID, input.QuestionID, input.AnswerText); err != nil {
		return nil, fmt.Errorf("%w: saving answer: %w", ErrWriteFailed, err)
	}
	after := progress.Calculate(c, applyAnswer(responses, sessionID, input))

	updated, err := s.sessions.UpdateProgress(ctx, sessionID, &question.ID, snapshotStep(c, question), after.Percentage)
	if err != nil {
		return nil, fmt.Errorf("%w: updating session snapshot: %w", ErrWriteFailed, err)
	}

	if before.Answered == 0 && after.Answered > 0 {
		s.markStarted(ctx, updated)
	}

	slog.DebugContext(ctx, "answer saved",
		"question_id", question.ID,
		"answered", after.Answered,
		"total", after.Total)

	return &AdvanceResult{
		Session:  updated,
		Progress: after,
		Position: progress.Next(c, question.ID),
	}, nil
}

// Complete finishes the session. Completion is forced to 100% even when
// questions, required ones included, were skipped.
func (s *responseService) Complete(ctx context.Context, sessionID int64, input AnswerInput) (*AdvanceResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: &sessionID,
		Component: "engine.service.response",
	})

	session, err := s.ownedSession(ctx, sessionID, input.caller())
	if err != nil {
		return nil, err
	}

	c, responses, err := s.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return &AdvanceResult{
			Session:  session,
			Progress: progress.Calculate(c, responses),
			Position: progress.ResolveResume(session, c, nil),
		}, nil
	}

	if input.QuestionID != 0 {
		if _, ok := c.Question(input.QuestionID); !ok {
			return nil, ErrQuestionNotInCatalog
		}
		if err := s.responses.Upsert(ctx, sessionID, input.QuestionID, input.AnswerText); err != nil {
			return nil, fmt.Errorf("%w: saving answer: %w", ErrWriteFailed, err)
		}
		responses = applyAnswer(responses, sessionID, input)
	}

	now := time.Now().UTC()
	completed, err := s.sessions.Complete(ctx, sessionID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: completing session: %w", ErrWriteFailed, err)
	}

	paID := completed.Owner.ParticipantAssessmentID
	if nominationID, ok := completed.Owner.Respondent.NominationID(); ok {
		if err := s.mirrorReviewStatus(ctx, nominationID, model.ReviewStatusCompleted); err != nil {
			slog.WarnContext(ctx, "failed to mirror review completion", "error", err, "nomination_id", nominationID)
		}
		pa, err := s.assessments.GetByID(ctx, paID)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "skipping report refresh, assessment lookup failed", "error", err)
		case pa.HasReport():
			s.enqueue(ctx, queue.ReportRegenerationTask(paID, queue.ReasonReviewCompleted))
		}
	} else {
		if _, err := s.assessments.UpdateStatus(ctx, paID, model.AssessmentStatusCompleted, &now); err != nil {
			// Healed on the next open since the session is already completed.
			slog.WarnContext(ctx, "failed to mark assessment completed", "error", err)
		}
		if c.QuestionSet.AssessmentType.IsStepGrouped() {
			s.enqueue(ctx, queue.ReportRegenerationTask(paID, queue.ReasonAssessmentCompleted))
		}
	}

	result := &AdvanceResult{
		Session:  completed,
		Progress: progress.Calculate(c, responses),
		Position: progress.ResolveResume(completed, c, nil),
	}

	slog.InfoContext(ctx, "response session completed",
		"answered", result.Progress.Answered,
		"total", result.Progress.Total)

	return result, nil
}

// Retake wipes a completed session's answers and reopens the same row.
func (s *responseService) Retake(ctx context.Context, sessionID int64, caller Caller) (*model.ResponseSession, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: &sessionID,
		Component: "engine.service.response",
	})

	session, err := s.ownedSession(ctx, sessionID, caller)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted() {
		return nil, ErrSessionNotCompleted
	}

	var reset *model.ResponseSession
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Responses().DeleteBySession(ctx, sessionID); err != nil {
			return fmt.Errorf("deleting responses: %w", err)
		}

		var err error
		reset, err = sp.Sessions().Reset(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("resetting session: %w", err)
		}

		if caller.Respondent.IsReviewer() {
			return nil
		}
		if _, err := sp.ParticipantAssessments().UpdateStatus(ctx, session.Owner.ParticipantAssessmentID, model.AssessmentStatusNotStarted, nil); err != nil {
			return fmt.Errorf("resetting assessment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if nominationID, ok := caller.Respondent.NominationID(); ok {
		if err := s.mirrorReviewStatus(ctx, nominationID, model.ReviewStatusInProgress); err != nil {
			slog.WarnContext(ctx, "failed to mirror review retake", "error", err, "nomination_id", nominationID)
		}
	}

	slog.InfoContext(ctx, "response session reset for retake")
	return reset, nil
}

func (s *responseService) Progress(ctx context.Context, sessionID int64, caller Caller) (progress.Progress, error) {
	session, err := s.ownedSession(ctx, sessionID, caller)
	if err != nil {
		return progress.Progress{}, err
	}
	c, responses, err := s.loadState(ctx, session)
	if err != nil {
		return progress.Progress{}, err
	}
	return progress.Calculate(c, responses), nil
}

func (s *responseService) Resume(ctx context.Context, sessionID int64, caller Caller) (progress.Position, error) {
	session, err := s.ownedSession(ctx, sessionID, caller)
	if err != nil {
		return progress.Position{}, err
	}
	c, responses, err := s.loadState(ctx, session)
	if err != nil {
		return progress.Position{}, err
	}
	return progress.ResolveResume(session, c, progress.AnsweredSet(c, responses)), nil
}

func (s *responseService) session(ctx context.Context, sessionID int64) (*model.ResponseSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: getting session: %w", ErrStateUnavailable, err)
	}
	return session, nil
}

// ownedSession loads a session the caller may act on. Reviewer sessions
// additionally require the caller to be the reviewer on a nomination that
// is still accepted.
func (s *responseService) ownedSession(ctx context.Context, sessionID int64, caller Caller) (*model.ResponseSession, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Owner.Respondent != caller.Respondent {
		return nil, ErrNotSessionOwner
	}
	if nominationID, ok := session.Owner.Respondent.NominationID(); ok {
		if _, err := s.acceptedNomination(ctx, nominationID, caller.Reviewer); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// loadState reads the session's pinned catalog and its saved answers.
func (s *responseService) loadState(ctx context.Context, session *model.ResponseSession) (*catalog.Catalog, []model.Response, error) {
	c, err := s.resolver.Load(ctx, session.Owner.QuestionSetID)
	if err != nil {
		return nil, nil, resolveErr(err)
	}
	responses, err := s.responses.LoadAll(ctx, session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loading responses: %w", ErrStateUnavailable, err)
	}
	return c, responses, nil
}

func (s *responseService) acceptedNomination(ctx context.Context, nominationID int64, reviewer model.ReviewerRef) (*model.ReviewerNomination, error) {
	nomination, err := s.nominations.GetByID(ctx, nominationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNominationNotFound
		}
		return nil, fmt.Errorf("%w: getting nomination: %w", ErrStateUnavailable, err)
	}
	if nomination.Reviewer != reviewer {
		return nil, ErrNotNominatedReviewer
	}
	if nomination.RequestStatus != model.RequestStatusAccepted {
		return nil, ErrNominationNotAccepted
	}
	return nomination, nil
}

// repairStatus corrects a cached assessment status that drifted from the
// session. Drift is staleness, not an error, so failures are only logged.
func (s *responseService) repairStatus(ctx context.Context, c *catalog.Catalog, pa *model.ParticipantAssessment, session *model.ResponseSession, answered int) {
	derived := progress.DeriveStatus(session, answered)
	if derived == pa.Status {
		return
	}

	var submittedAt *time.Time
	if derived == model.AssessmentStatusCompleted {
		submittedAt = pa.SubmittedAt
		if submittedAt == nil {
			submittedAt = session.SubmittedAt
		}
	}

	updated, err := s.assessments.UpdateStatus(ctx, pa.ID, derived, submittedAt)
	if err != nil {
		slog.WarnContext(ctx, "failed to repair assessment status", "error", err)
		return
	}

	slog.DebugContext(ctx, "repaired drifted assessment status",
		"from", pa.Status,
		"to", derived)
	*pa = *updated

	if derived == model.AssessmentStatusCompleted && c.QuestionSet.AssessmentType.IsStepGrouped() {
		s.enqueue(ctx, queue.ReportRegenerationTask(pa.ID, queue.ReasonAssessmentCompleted))
	}
}

// markStarted runs on the first answered question of a session.
func (s *responseService) markStarted(ctx context.Context, session *model.ResponseSession) {
	if nominationID, ok := session.Owner.Respondent.NominationID(); ok {
		if err := s.mirrorReviewStatus(ctx, nominationID, model.ReviewStatusInProgress); err != nil {
			slog.WarnContext(ctx, "failed to mirror review start", "error", err, "nomination_id", nominationID)
		}
		return
	}

	pa, err := s.assessments.GetByID(ctx, session.Owner.ParticipantAssessmentID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load assessment for start", "error", err)
		return
	}
	if pa.Status != model.AssessmentStatusNotStarted {
		return
	}
	if _, err := s.assessments.UpdateStatus(ctx, pa.ID, model.AssessmentStatusInProgress, nil); err != nil {
		slog.WarnContext(ctx, "failed to mark assessment in progress", "error", err)
	}
}

// mirrorReviewStatus copies a reviewer's session state to where the
// nomination reads it from: the external reviewer record for external
// reviewers, the nomination itself otherwise.
func (s *responseService) mirrorReviewStatus(ctx context.Context, nominationID int64, status string) error {
	nomination, err := s.nominations.GetByID(ctx, nominationID)
	if err != nil {
		return fmt.Errorf("getting nomination: %w", err)
	}
	if nomination.Reviewer.IsExternal() {
		return s.externalReviewers.UpdateReviewStatus(ctx, nomination.Reviewer.ID, status)
	}
	return s.nominations.UpdateReviewStatus(ctx, nomination.ID, status)
}

// enqueue is fire-and-forget; a lost task never affects session state.
func (s *responseService) enqueue(ctx context.Context, task queue.Task) {
	task.TraceID = logger.TraceID(ctx)
	if err := s.producer.Enqueue(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to enqueue task",
			"error", err,
			"task_type", task.TaskType)
	}
}

// snapshotStep is the step recorded alongside the question just left. Leaving
// the last question of a step records the next step so that resuming lands
// on its first question.
func snapshotStep(c *catalog.Catalog, question model.QuestionDefinition) *int64 {
	if !c.HasSteps() {
		return question.StepID
	}
	_, gi, ok := c.IndexOf(question.ID)
	if !ok {
		return question.StepID
	}
	if c.IsLastInGroup(question.ID) {
		if next, ok := c.NextStepID(gi); ok {
			return &next
		}
	}
	if step := c.Groups[gi].Step; step != nil {
		stepID := step.ID
		return &stepID
	}
	return nil
}

// applyAnswer mirrors ResponseStore.Upsert on an in-memory copy.
func applyAnswer(responses []model.Response, sessionID int64, input AnswerInput) []model.Response {
	out := append([]model.Response(nil), responses...)
	blank := strings.TrimSpace(input.AnswerText) == ""

	for i := range out {
		if out[i].QuestionID != input.QuestionID {
			continue
		}
		if blank {
			out[i].AnswerText = nil
			out[i].IsAnswered = false
		} else {
			text := input.AnswerText
			out[i].AnswerText = &text
			out[i].IsAnswered = true
		}
		return out
	}

	if !blank {
		text := input.AnswerText
		out = append(out, model.Response{
			SessionID:  sessionID,
			QuestionID: input.QuestionID,
			AnswerText: &text,
			IsAnswered: true,
		})
	}
	return out
}

func answerMap(responses []model.Response) map[int64]string {
	answers := make(map[int64]string, len(responses))
	for _, r := range responses {
		if r.IsAnswered && r.AnswerText != nil {
			answers[r.QuestionID] = *r.AnswerText
		}
	}
	return answers
}

func resolveErr(err error) error {
	if errors.Is(err, catalog.ErrQuestionSetNotFound) || errors.Is(err, catalog.ErrCohortAssessmentNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStateUnavailable, err)
}
