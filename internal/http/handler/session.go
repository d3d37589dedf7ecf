package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/dto"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	responses service.ResponseService
}

func NewSessionHandler(responses service.ResponseService) *SessionHandler {
	return &SessionHandler{responses: responses}
}

// Open starts or resumes the caller's own session for a cohort assessment.
func (h *SessionHandler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	cohortAssessmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(ctx)
	if actor.UserID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "only participants can open their own assessment"})
		return
	}

	view, err := h.responses.Open(ctx, service.OpenSessionRequest{
		Respondent:         model.ParticipantRespondent(*actor.UserID),
		CohortAssessmentID: cohortAssessmentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if view.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToOpenSessionResponse(view))
}

// OpenReview starts or resumes the reviewer session behind an accepted nomination.
func (h *SessionHandler) OpenReview(c *gin.Context) {
	ctx := c.Request.Context()

	nominationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(ctx)
	reviewer, ok := actor.Reviewer()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	view, err := h.responses.Open(ctx, service.OpenSessionRequest{
		Respondent: model.ReviewerRespondent(nominationID),
		Reviewer:   reviewer,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if view.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToOpenSessionResponse(view))
}

func (h *SessionHandler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := parseIDParam(c, "question_id")
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller, ok := callerFor(c, req.NominationID)
	if !ok {
		return
	}

	result, err := h.responses.Advance(ctx, sessionID, service.AnswerInput{
		Respondent: caller.Respondent,
		Reviewer:   caller.Reviewer,
		QuestionID: questionID,
		AnswerText: req.Answer,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvanceResponse(result))
}

// Complete accepts an optional final answer and submits the session.
func (h *SessionHandler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller, ok := callerFor(c, req.NominationID)
	if !ok {
		return
	}

	input := service.AnswerInput{
		Respondent: caller.Respondent,
		Reviewer:   caller.Reviewer,
		AnswerText: req.Answer,
	}
	if req.QuestionID != nil {
		input.QuestionID = *req.QuestionID
	}

	result, err := h.responses.Complete(ctx, sessionID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvanceResponse(result))
}

func (h *SessionHandler) Retake(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RetakeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller, ok := callerFor(c, req.NominationID)
	if !ok {
		return
	}

	session, err := h.responses.Retake(ctx, sessionID, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Progress and Resume take the reviewer's nomination as ?nomination_id=.
func (h *SessionHandler) Progress(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	caller, ok := callerFromQuery(c)
	if !ok {
		return
	}

	p, err := h.responses.Progress(c.Request.Context(), sessionID, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressResponse(p))
}

func (h *SessionHandler) Resume(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	caller, ok := callerFromQuery(c)
	if !ok {
		return
	}

	pos, err := h.responses.Resume(c.Request.Context(), sessionID, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionResponse(pos))
}

// callerFor resolves who is acting: the authenticated reviewer on the
// nomination when one is named, otherwise the calling participant. The
// service checks the reviewer against the nomination.
func callerFor(c *gin.Context, nominationID *int64) (service.Caller, bool) {
	actor, _ := middleware.GetActor(c.Request.Context())
	if nominationID != nil {
		reviewer, ok := actor.Reviewer()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return service.Caller{}, false
		}
		return service.Caller{
			Respondent: model.ReviewerRespondent(*nominationID),
			Reviewer:   reviewer,
		}, true
	}
	if actor.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nomination_id is required for reviewers"})
		return service.Caller{}, false
	}
	return service.Caller{Respondent: model.ParticipantRespondent(*actor.UserID)}, true
}

func callerFromQuery(c *gin.Context) (service.Caller, bool) {
	nominationID, ok := parseOptionalIDQuery(c, "nomination_id")
	if !ok {
		return service.Caller{}, false
	}
	return callerFor(c, nominationID)
}
