package services

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// NavigationSvcFacade is the finite state machine over the named views,
// driven by user actions. All transitions are deterministic and synchronous.
type NavigationSvcFacade interface {
	// Current returns the view state as it stands, including the transient
	// party-list tab, search text and selected-party pointer.
	Current() dto.ViewState

	// SubmitLogin handles LOGIN --submit--> DASHBOARD. It creates the user
	// profile and stays on LOGIN with a validation error when phone or shop
	// name is empty.
	SubmitLogin(ctx context.Context, phone, shopName string) (dto.ViewState, error)
	// SelectTab handles DASHBOARD --selectTab--> PARTY_LIST, setting the
	// active party-type filter and clearing the search text.
	SelectTab(partyType domain.PartyType) (dto.ViewState, error)
	// SelectParty handles PARTY_LIST --selectParty--> PARTY_DETAIL. The
	// party ID must exist; the selection is a lookup key, not a copy.
	SelectParty(partyID string) (dto.ViewState, error)
	// SetSearch updates the transient search text while on PARTY_LIST.
	SetSearch(text string) (dto.ViewState, error)
	// Back handles PARTY_LIST --back--> DASHBOARD and
	// PARTY_DETAIL --back--> PARTY_LIST.
	Back() (dto.ViewState, error)
	// NavTap jumps to one of the four bottom-nav destinations from any view
	// except into PARTY_DETAIL, resetting the transient list state.
	NavTap(target domain.View) (dto.ViewState, error)
}
