package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/gin-gonic/gin"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Identity headers are set by the authenticating gateway in front of the engine.
const (
	HeaderUserID             = "X-User-ID"
	HeaderExternalReviewerID = "X-External-Reviewer-ID"
)

// Actor is the caller: an internal user or an external reviewer who arrived
// through an invite link.
type Actor struct {
	UserID             *int64
	ExternalReviewerID *int64
}

// Reviewer is the ReviewerRef the actor answers nominations as.
func (a Actor) Reviewer() (model.ReviewerRef, bool) {
	switch {
	case a.ExternalReviewerID != nil:
		return model.ExternalReviewerRef(*a.ExternalReviewerID), true
	case a.UserID != nil:
		return model.InternalReviewer(*a.UserID), true
	default:
		return model.ReviewerRef{}, false
	}
}

func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var actor Actor
		for header, target := range map[string]**int64{
			HeaderUserID:             &actor.UserID,
			HeaderExternalReviewerID: &actor.ExternalReviewerID,
		} {
			raw := c.GetHeader(header)
			if raw == "" {
				continue
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + header})
				return
			}
			*target = &id
		}

		if actor.UserID == nil && actor.ExternalReviewerID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), actorContextKey, actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(Actor)
	return actor, ok
}
