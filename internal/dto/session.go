package dto

import "github.com/oshocredit/khata_backend/internal/core/domain"

// LoginRequest is the LOGIN view's submit payload.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,inphone"`
	ShopName string `json:"shopName" binding:"required"`
}

// ProfileResponse is the persisted user profile as rendered in the ADMIN
// view.
type ProfileResponse struct {
	UserID    string          `json:"userID"`
	ShopName  string          `json:"shopName"`
	Phone     string          `json:"phone"`
	Role      domain.UserRole `json:"role"`
	IsBlocked bool            `json:"isBlocked"`
}

// ToProfileResponse maps a domain profile to its response shape.
func ToProfileResponse(profile domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:    profile.UserID,
		ShopName:  profile.ShopName,
		Phone:     profile.Phone,
		Role:      profile.Role,
		IsBlocked: profile.IsBlocked,
	}
}

// ViewState is the navigation state machine's externally visible state:
// the active view plus the transient PARTY_LIST scope (tab, search text,
// selected party).
type ViewState struct {
	View            domain.View      `json:"view"`
	ActiveTab       domain.PartyType `json:"activeTab"`
	SearchText      string           `json:"searchText"`
	SelectedPartyID string           `json:"selectedPartyID,omitempty"`
}

// SelectTabRequest sets the active party-type filter when entering the
// party list from the dashboard quick-tiles.
type SelectTabRequest struct {
	Type domain.PartyType `json:"type" binding:"required,oneof=CUSTOMER SUPPLIER"`
}

// NavTapRequest jumps to a bottom-nav destination.
type NavTapRequest struct {
	Target domain.View `json:"target" binding:"required"`
}

// SearchRequest updates the transient party-list search text.
type SearchRequest struct {
	Text string `json:"text"`
}

// SelectPartyRequest opens the detail view for an existing party.
type SelectPartyRequest struct {
	PartyID string `json:"partyID" binding:"required"`
}
