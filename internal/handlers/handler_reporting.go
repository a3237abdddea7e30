package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
)

// reportingHandler serves the REPORTS view data and the statement export.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/business", h.getBusinessReport)
		reportingGroup.GET("/statement/:partyID", h.getPartyStatement)
	}
}

func (h *reportingHandler) getBusinessReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportingService.BusinessReport(c.Request.Context()))
}

// getPartyStatement streams the party's ledger statement as a PDF download.
func (h *reportingHandler) getPartyStatement(c *gin.Context) {
	pdfBytes, err := h.reportingService.PartyStatementPDF(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
