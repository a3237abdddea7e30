package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/middleware"
)

var (
	ErrInvalidTransition = errors.New("invalid view transition")
	ErrUnknownNavTarget  = errors.New("unknown navigation target")
)

// backTransitions declares where the back action lands from each view.
// Views absent from the map have no back transition.
var backTransitions = map[domain.View]domain.View{
	domain.ViewPartyList:   domain.ViewDashboard,
	domain.ViewPartyDetail: domain.ViewPartyList,
}

// navigationService is the deterministic finite state machine over the
// named views. It owns the transient UI state scoped to PARTY_LIST: the
// active party-type tab, the search text and the selected-party pointer
// (a lookup key into the session, never a copy).
type navigationService struct {
	session portssvc.SessionSvcFacade

	mu              sync.Mutex
	view            domain.View
	activeTab       domain.PartyType
	searchText      string
	selectedPartyID string
}

// NewNavigationService creates the state machine. The initial view is LOGIN
// when no profile exists yet, DASHBOARD otherwise.
func NewNavigationService(session portssvc.SessionSvcFacade) portssvc.NavigationSvcFacade {
	initial := domain.ViewDashboard
	if session.Profile() == nil {
		initial = domain.ViewLogin
	}
	return &navigationService{
		session:   session,
		view:      initial,
		activeTab: domain.Customer,
	}
}

var _ portssvc.NavigationSvcFacade = (*navigationService)(nil)

func (s *navigationService) Current() dto.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// SubmitLogin creates the singleton profile and moves to DASHBOARD. On a
// validation failure the machine stays on LOGIN and the message is
// surfaced to the caller.
func (s *navigationService) SubmitLogin(ctx context.Context, phone, shopName string) (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != domain.ViewLogin {
		return s.stateLocked(), fmt.Errorf("%w: submit is only valid on %s", ErrInvalidTransition, domain.ViewLogin)
	}

	if _, err := s.session.CreateProfile(ctx, phone, shopName); err != nil {
		return s.stateLocked(), err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Profile onboarded, entering dashboard", slog.String("shop_name", shopName))
	s.view = domain.ViewDashboard
	return s.stateLocked(), nil
}

// SelectTab enters the party list from the dashboard quick-tiles (or
// switches tabs within the list), setting the type filter and clearing the
// search text.
func (s *navigationService) SelectTab(partyType domain.PartyType) (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !partyType.Valid() {
		return s.stateLocked(), fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidPartyType)
	}
	if s.view != domain.ViewDashboard && s.view != domain.ViewPartyList {
		return s.stateLocked(), fmt.Errorf("%w: selectTab is not valid on %s", ErrInvalidTransition, s.view)
	}

	s.view = domain.ViewPartyList
	s.activeTab = partyType
	s.searchText = ""
	s.selectedPartyID = ""
	return s.stateLocked(), nil
}

// SelectParty opens the detail view for an existing party.
func (s *navigationService) SelectParty(partyID string) (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != domain.ViewPartyList {
		return s.stateLocked(), fmt.Errorf("%w: selectParty is only valid on %s", ErrInvalidTransition, domain.ViewPartyList)
	}
	if _, err := s.session.FindParty(partyID); err != nil {
		return s.stateLocked(), err
	}

	s.view = domain.ViewPartyDetail
	s.selectedPartyID = partyID
	return s.stateLocked(), nil
}

// SetSearch updates the transient search text. Typing into the dashboard
// search bar drops the user into the party list, matching the original
// flow.
func (s *navigationService) SetSearch(text string) (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.view {
	case domain.ViewPartyList:
		// stay
	case domain.ViewDashboard:
		s.view = domain.ViewPartyList
	default:
		return s.stateLocked(), fmt.Errorf("%w: search is only valid on %s", ErrInvalidTransition, domain.ViewPartyList)
	}
	s.searchText = text
	return s.stateLocked(), nil
}

// Back follows the declared back transitions.
func (s *navigationService) Back() (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := backTransitions[s.view]
	if !ok {
		return s.stateLocked(), fmt.Errorf("%w: no back transition from %s", ErrInvalidTransition, s.view)
	}

	if s.view == domain.ViewPartyDetail {
		s.selectedPartyID = ""
	}
	s.view = target
	return s.stateLocked(), nil
}

// NavTap jumps to a bottom-nav destination. PARTY_DETAIL suppresses the
// navigation chrome, so tapping is rejected both from and into it. The
// transient party-list state is reset on every jump.
func (s *navigationService) NavTap(target domain.View) (dto.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.NavTargets[target] {
		return s.stateLocked(), fmt.Errorf("%w: %s", ErrUnknownNavTarget, target)
	}
	if s.view == domain.ViewLogin {
		return s.stateLocked(), fmt.Errorf("%w: onboarding is required first", apperrors.ErrNoProfile)
	}
	if s.view == domain.ViewPartyDetail {
		return s.stateLocked(), fmt.Errorf("%w: navigation is suppressed on %s", ErrInvalidTransition, domain.ViewPartyDetail)
	}

	s.view = target
	s.activeTab = domain.Customer
	s.searchText = ""
	s.selectedPartyID = ""
	return s.stateLocked(), nil
}

// stateLocked snapshots the visible state. Callers must hold mu.
func (s *navigationService) stateLocked() dto.ViewState {
	return dto.ViewState{
		View:            s.view,
		ActiveTab:       s.activeTab,
		SearchText:      s.searchText,
		SelectedPartyID: s.selectedPartyID,
	}
}
