package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// sessionHandler handles onboarding, the profile surface and the view
// state machine actions.
type sessionHandler struct {
	session    portssvc.SessionSvcFacade
	navigation portssvc.NavigationSvcFacade
}

func newSessionHandler(session portssvc.SessionSvcFacade, navigation portssvc.NavigationSvcFacade) *sessionHandler {
	return &sessionHandler{session: session, navigation: navigation}
}

func registerSessionRoutes(rg *gin.RouterGroup, session portssvc.SessionSvcFacade, navigation portssvc.NavigationSvcFacade) {
	h := newSessionHandler(session, navigation)

	sessionGroup := rg.Group("/session")
	{
		sessionGroup.GET("/view", h.getView)
		sessionGroup.GET("/profile", h.getProfile)
		sessionGroup.POST("/login", h.submitLogin)
		sessionGroup.POST("/tab", h.selectTab)
		sessionGroup.POST("/party", h.selectParty)
		sessionGroup.POST("/search", h.setSearch)
		sessionGroup.POST("/back", h.back)
		sessionGroup.POST("/nav", h.navTap)
	}
}

// getView returns the navigation state machine's current state.
func (h *sessionHandler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, h.navigation.Current())
}

// getProfile returns the persisted user profile, or 404 before onboarding.
func (h *sessionHandler) getProfile(c *gin.Context) {
	profile := h.session.Profile()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile exists yet"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*profile))
}

// submitLogin creates the singleton profile and enters the dashboard.
func (h *sessionHandler) submitLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone and shop name are required"})
		return
	}

	state, err := h.navigation.SubmitLogin(c.Request.Context(), req.Phone, req.ShopName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *sessionHandler) selectTab(c *gin.Context) {
	var req dto.SelectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Party type must be CUSTOMER or SUPPLIER"})
		return
	}

	state, err := h.navigation.SelectTab(req.Type)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *sessionHandler) selectParty(c *gin.Context) {
	var req dto.SelectPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Party ID is required"})
		return
	}

	state, err := h.navigation.SelectParty(req.PartyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *sessionHandler) setSearch(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search payload"})
		return
	}

	state, err := h.navigation.SetSearch(req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *sessionHandler) back(c *gin.Context) {
	state, err := h.navigation.Back()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *sessionHandler) navTap(c *gin.Context) {
	var req dto.NavTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Navigation target is required"})
		return
	}

	state, err := h.navigation.NavTap(req.Target)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
