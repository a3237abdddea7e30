package domain

// Snapshot is the whole persisted state of the application: the full party
// set and the user profile (absent before onboarding). It is written as a
// single record with whole-object replace semantics on every mutation.
type Snapshot struct {
	Parties []Party      `json:"parties"`
	User    *UserProfile `json:"user,omitempty"`
}
