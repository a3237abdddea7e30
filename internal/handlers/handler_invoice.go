package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// invoiceHandler exposes the session-scoped GST invoice helper.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoiceGroup := rg.Group("/invoice")
	{
		invoiceGroup.GET("", h.getInvoice)
		invoiceGroup.POST("/items", h.addItem)
		invoiceGroup.PUT("/items/:itemID", h.updateItem)
		invoiceGroup.DELETE("/items/:itemID", h.removeItem)
		invoiceGroup.DELETE("", h.reset)
	}
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InvoiceResponse{
		Items:  h.invoiceService.Items(),
		Totals: h.invoiceService.Totals(),
	})
}

func (h *invoiceHandler) addItem(c *gin.Context) {
	var req dto.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, qty and unit price are required"})
		return
	}

	item, err := h.invoiceService.AddItem(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *invoiceHandler) updateItem(c *gin.Context) {
	var req dto.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, qty and unit price are required"})
		return
	}

	item, err := h.invoiceService.UpdateItem(c.Param("itemID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *invoiceHandler) removeItem(c *gin.Context) {
	if err := h.invoiceService.RemoveItem(c.Param("itemID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reset discards the working list without confirmation, matching the
// editor's close semantics.
func (h *invoiceHandler) reset(c *gin.Context) {
	h.invoiceService.Reset()
	c.Status(http.StatusNoContent)
}
