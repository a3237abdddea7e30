package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
)

// summaryHandler exposes the AI business summary's single-slot result cell.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	summaryGroup := rg.Group("/summary")
	{
		summaryGroup.GET("", h.getSummary)
		summaryGroup.POST("/refresh", h.refreshSummary)
	}
}

// getSummary returns the last stored text and the loading flag.
func (h *summaryHandler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.summaryService.Result())
}

// refreshSummary triggers a new advisor call. The call is fire-and-forget;
// the caller polls getSummary for the result.
func (h *summaryHandler) refreshSummary(c *gin.Context) {
	h.summaryService.Refresh(c.Request.Context())
	c.JSON(http.StatusAccepted, h.summaryService.Result())
}
