package models

// SyncResult is the aggregate outcome of one full reconciliation pass.
type SyncResult struct {
	// Success is false when a phase aborted early (total snapshot fetch
	// failure); isolated per-record failures do not clear it.
	Success bool `json:"success"`

	// Users is the number of profile upserts attempted.
	Users int `json:"users"`

	// Ratings is the number of per-user watchlist merges attempted.
	Ratings int `json:"ratings"`

	// Deferred counts merges that targeted an external key with no local
	// profile yet. Not an error: they self-heal on a later pass.
	Deferred int `json:"deferred"`

	// Error carries the first fatal error message when Success is false.
	Error string `json:"error,omitempty"`
}
