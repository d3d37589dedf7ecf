package handler

import (
	"net/http"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/gin-gonic/gin"
)

// PlanConfigSchema serves the JSON schema admin tooling validates plan
// overrides against.
func PlanConfigSchema(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.PlanConfigSchema())
}
