package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/middleware"
)

// partyHandler handles HTTP requests for parties and their ledger entries.
type partyHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newPartyHandler(ls portssvc.LedgerSvcFacade) *partyHandler {
	return &partyHandler{ledgerService: ls}
}

// RegisterPartyRoutes mounts the party and stats endpoints on the group.
func RegisterPartyRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newPartyHandler(ledgerService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.POST("/:partyID/transactions", h.addTransaction)
	}

	rg.GET("/stats", h.getStats)
}

// createParty adds a new customer or supplier.
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create party payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, phone and type are required"})
		return
	}

	party, err := h.ledgerService.AddParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(*party))
}

// listParties filters by party type (required) and optional search text.
func (h *partyHandler) listParties(c *gin.Context) {
	partyType := domain.PartyType(c.DefaultQuery("type", string(domain.Customer)))
	if !partyType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be CUSTOMER or SUPPLIER"})
		return
	}
	search := c.Query("search")

	parties := h.ledgerService.ListParties(c.Request.Context(), partyType, search)
	c.JSON(http.StatusOK, dto.ToPartySummaries(parties))
}

// getParty returns one party with its ledger history in display order.
func (h *partyHandler) getParty(c *gin.Context) {
	party, err := h.ledgerService.GetParty(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(*party))
}

// addTransaction appends a ledger entry to the party.
func (h *partyHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid transaction payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid amount and type are required"})
		return
	}

	party, err := h.ledgerService.AddTransaction(c.Request.Context(), c.Param("partyID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(*party))
}

// getStats returns the aggregate dashboard figures, recomputed on read.
func (h *partyHandler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.Stats(c.Request.Context()))
}
