package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnknownMovie is returned when a feedback event names a movie id
	// absent from the catalog. Nothing is mutated and the remote service is
	// never called.
	ErrUnknownMovie = errors.New("unknown movie id")

	// ErrInvalidRating is returned when a rating falls outside the closed
	// [1,5] interval. Enforced identically on the feedback path and during
	// rating reconciliation.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
