package router

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func NominationRouter(rg *gin.RouterGroup, h *handler.NominationHandler, sessions *handler.SessionHandler) {
	rg.POST("/cohort-assessments/:id/nominations", h.Create)
	rg.GET("/participant-assessments/:id/nominations", h.List)
	rg.GET("/participant-assessments/:id/nominations/summary", h.Summary)
	rg.GET("/reviewers/me/nominations", h.Inbox)

	nominations := rg.Group("/nominations")
	{
		nominations.POST("/:id/accept", h.Accept)
		nominations.POST("/:id/reject", h.Reject)
		nominations.DELETE("/:id", h.Delete)
		nominations.POST("/:id/session", sessions.OpenReview)
	}
}
