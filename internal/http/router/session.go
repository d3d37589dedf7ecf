package router

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func SessionRouter(rg *gin.RouterGroup, h *handler.SessionHandler) {
	rg.POST("/cohort-assessments/:id/sessions", h.Open)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/progress", h.Progress)
		sessions.GET("/:id/resume", h.Resume)
		sessions.PUT("/:id/answers/:question_id", h.Answer)
		sessions.POST("/:id/complete", h.Complete)
		sessions.POST("/:id/retake", h.Retake)
	}
}
