package models

import "time"

// WatchlistEntry is a single rated movie on a profile's watchlist.
// The store enforces at most one entry per (profile, movie) pair; rating a
// movie twice replaces the rating and timestamp in place.
type WatchlistEntry struct {
	MovieID int64     `json:"movie_id"`
	Rating  float64   `json:"rating"`
	RatedAt time.Time `json:"rated_at"`
}

// WatchlistItemView is a watchlist entry decorated with catalog data for
// client-facing responses.
type WatchlistItemView struct {
	MovieID int64     `json:"movie_id"`
	Title   string    `json:"title"`
	Rating  float64   `json:"rating"`
	RatedAt time.Time `json:"rated_at"`
}
