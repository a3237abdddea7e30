package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
)

// reminderHandler hands balance reminders off to the messaging channel.
type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

func newReminderHandler(rs portssvc.ReminderSvcFacade) *reminderHandler {
	return &reminderHandler{reminderService: rs}
}

func registerReminderRoutes(rg *gin.RouterGroup, reminderService portssvc.ReminderSvcFacade) {
	h := newReminderHandler(reminderService)
	rg.POST("/parties/:partyID/reminder", h.sendReminder)
}

// sendReminder composes the reminder, stamps lastReminderSent and returns
// the deep link for the client to open.
func (h *reminderHandler) sendReminder(c *gin.Context) {
	response, err := h.reminderService.SendReminder(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
