package models

import "time"

// Profile represents a local user profile mirrored against the remote
// recommendation service. Login identity fields (Username, Email,
// PasswordHash) are owned by the auth flow: the user reconciler may only
// seed them at creation time and never touches them afterwards.
type Profile struct {
	// ProfileID is the internal surrogate key at the persistence layer.
	// It is not exposed via JSON.
	ProfileID int64 `json:"-"`

	// MLUserID is the external user key assigned by the recommendation
	// service. Unique and immutable once created.
	MLUserID int64 `json:"ml_user_id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Email is the user's contact address, used as the signin key.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext and never serialized.
	PasswordHash string `json:"-"`

	// Age in years, kept within [1,120]; out-of-range remote values are
	// replaced with DefaultAge during reconciliation.
	Age int `json:"age"`

	// Gender is "M" or "F".
	Gender string `json:"gender"`

	// Occupation is one of the closed occupation list, or "other".
	Occupation string `json:"occupation"`

	// ZipCode is the postal code, "00000" when the remote side has none.
	ZipCode string `json:"zip_code"`

	// Watchlist is the user's rating history, at most one entry per movie.
	Watchlist []WatchlistEntry `json:"watchlist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
