package models

// RemoteUserRecord is one user row from the recommendation service's full
// user snapshot. Identifiers are coerced to integers at the adapter
// boundary; demographic attributes stay raw and are normalized by the user
// reconciler.
type RemoteUserRecord struct {
	// UserID is the external user key.
	UserID int64 `json:"user_id"`

	// Age as transmitted by the remote side. May be empty or unparseable.
	Age string `json:"age"`

	// Gender as transmitted, expected "M" or "F" but not guaranteed.
	Gender string `json:"gender"`

	// Occupation as transmitted, matched case-insensitively against the
	// closed occupation list during reconciliation.
	Occupation string `json:"occupation"`
}

// RemoteRatingRecord is one rating event from the recommendation service's
// full rating snapshot. Multiple records may exist for the same
// (user, movie) pair; the last occurrence in snapshot order is canonical.
type RemoteRatingRecord struct {
	UserID    int64   `json:"user_id"`
	MovieID   int64   `json:"item_id"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// RemoteUserCreate is the payload for registering a new user with the
// recommendation service. The service answers with the external user key.
type RemoteUserCreate struct {
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Occupation string `json:"occupation"`
	ZipCode    string `json:"zip_code"`
}

// FeedbackEvent is the payload forwarded to the recommendation service when
// a user rates a movie.
type FeedbackEvent struct {
	UserID  int64   `json:"user_id"`
	MovieID int64   `json:"item_id"`
	Rating  float64 `json:"rating"`
}

// FeedbackAck is the remote service's acknowledgement of a feedback event.
type FeedbackAck struct {
	Status string `json:"status"`
}
