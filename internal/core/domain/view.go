package domain

// View identifies a screen in the application's navigation state machine.
type View string

const (
	ViewLogin       View = "LOGIN"
	ViewDashboard   View = "DASHBOARD"
	ViewPartyList   View = "PARTY_LIST"
	ViewPartyDetail View = "PARTY_DETAIL"
	ViewReports     View = "REPORTS"
	ViewAdmin       View = "ADMIN"
)

// NavTargets are the views reachable from the bottom navigation bar.
// PARTY_DETAIL is deliberately absent: it is only reachable by selecting a
// party, and its navigation chrome is suppressed.
var NavTargets = map[View]bool{
	ViewDashboard: true,
	ViewPartyList: true,
	ViewReports:   true,
	ViewAdmin:     true,
}
