package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Anything unrecognised
// is logged and reported as a 500.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var quotaErr *service.QuotaExceededError
	if errors.As(err, &quotaErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "quota_exceeded",
			"message":   quotaErr.Error(),
			"quota":     quotaErr.Quota,
			"active":    quotaErr.Active,
			"requested": quotaErr.Requested,
			"remaining": quotaErr.Remaining,
		})
		return
	}

	switch {
	case errors.Is(err, catalog.ErrQuestionSetNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "question_set_not_found", "message": err.Error()})
	case errors.Is(err, catalog.ErrCohortAssessmentNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, service.ErrNominationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, service.ErrNotSessionOwner),
		errors.Is(err, service.ErrNotNominatedReviewer),
		errors.Is(err, service.ErrNotNominator):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": err.Error()})
	case errors.Is(err, service.ErrNominationsDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "nominations_disabled", "message": err.Error()})
	case errors.Is(err, service.ErrSessionCompleted),
		errors.Is(err, service.ErrSessionNotCompleted),
		errors.Is(err, service.ErrNominationNotAccepted),
		errors.Is(err, service.ErrNominationNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid_transition", "message": err.Error()})
	case errors.Is(err, service.ErrQuestionNotInCatalog),
		errors.Is(err, service.ErrEmptyNominationBatch),
		errors.Is(err, service.ErrInvalidRespondent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
	case errors.Is(err, service.ErrStateUnavailable):
		slog.WarnContext(ctx, "state unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "state_unavailable", "message": "please retry"})
	case errors.Is(err, service.ErrWriteFailed):
		slog.ErrorContext(ctx, "write failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "write_failed", "message": "your last answer was not saved, please retry"})
	default:
		slog.ErrorContext(ctx, "unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an id from the query string when present.
func parseOptionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &id, true
}
