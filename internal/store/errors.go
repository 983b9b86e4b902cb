package store

import "errors"

// Sentinel errors surfaced by the profile store. Bulk reconciliation treats
// them as per-record failures; the feedback path aborts the whole request on
// any of them before the remote forward.
var (
	// ErrProfileAlreadyExists indicates a unique-constraint violation on
	// signup (email, username, or external user key already taken).
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrProfileNotFound indicates that no profile matched the lookup key.
	ErrProfileNotFound = errors.New("profile not found")

	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
)
