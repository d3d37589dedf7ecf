package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/dto"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type NominationHandler struct {
	nominations service.NominationService
}

func NewNominationHandler(nominations service.NominationService) *NominationHandler {
	return &NominationHandler{nominations: nominations}
}

func (h *NominationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	cohortAssessmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(ctx)
	if actor.UserID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "external reviewers cannot nominate"})
		return
	}

	var req dto.CreateNominationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewerIDs := make([]int64, 0, len(req.ReviewerIDs))
	for _, raw := range req.ReviewerIDs {
		reviewerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || reviewerID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reviewer id " + strconv.Quote(raw)})
			return
		}
		reviewerIDs = append(reviewerIDs, reviewerID)
	}

	participantID := *actor.UserID
	if req.ParticipantID != nil && *req.ParticipantID != participantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": "participants can only nominate reviewers for their own assessment"})
		return
	}

	result, err := h.nominations.Create(ctx, service.CreateNominationsRequest{
		ReviewerIDs:        reviewerIDs,
		ExternalEmails:     req.ExternalEmails,
		CohortAssessmentID: cohortAssessmentID,
		ParticipantID:      participantID,
		NominatedByID:      *actor.UserID,
	})
	switch {
	case err == nil:
	case result != nil && errors.Is(err, service.ErrAllDuplicates):
		c.JSON(http.StatusConflict, gin.H{"error": "all_duplicates", "result": dto.ToCreateNominationsResponse(result)})
		return
	case result != nil && errors.Is(err, service.ErrAllInvitesFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "all_invites_failed", "result": dto.ToCreateNominationsResponse(result)})
		return
	default:
		respondError(c, err)
		return
	}

	if result.Partial() {
		slog.InfoContext(ctx, "nomination batch partially failed",
			"created", len(result.Created),
			"failed", len(result.Failures))
	}

	c.JSON(http.StatusCreated, dto.ToCreateNominationsResponse(result))
}

func (h *NominationHandler) Accept(c *gin.Context) {
	h.respond(c, h.nominations.Accept)
}

func (h *NominationHandler) Reject(c *gin.Context) {
	h.respond(c, h.nominations.Reject)
}

func (h *NominationHandler) respond(c *gin.Context, transition func(context.Context, int64, model.ReviewerRef) (*model.ReviewerNomination, error)) {
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

	nomination, err := transition(ctx, nominationID, reviewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNominationResponse(nomination))
}

func (h *NominationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	nominationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(ctx)
	if actor.UserID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.nominations.Delete(ctx, nominationID, *actor.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NominationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	participantAssessmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.nominations.List(ctx, participantAssessmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNominationViewResponses(views))
}

func (h *NominationHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	participantAssessmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.nominations.Summary(ctx, participantAssessmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNominationSummaryResponse(summary))
}

// Inbox lists nominations addressed to the calling internal user.
func (h *NominationHandler) Inbox(c *gin.Context) {
	ctx := c.Request.Context()

	actor, _ := middleware.GetActor(ctx)
	if actor.UserID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "external reviewers have no inbox"})
		return
	}

	nominations, err := h.nominations.ListForReviewer(ctx, *actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNominationResponses(nominations))
}
