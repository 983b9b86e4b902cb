// Package adapter provides the transport-layer gateway to the external
// recommendation service.
//
// The primary abstraction is [RemoteCatalog], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteCatalog]) built on resty.
//
// The remote side is loosely typed: identifiers may arrive as numbers or
// strings, demographic fields are raw text. All coercion into the typed
// models.Remote*Record shapes happens here, so reconcilers never see wire
// payloads. Error values defined in errors.go are mapped from transport
// failures by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrRemoteUnavailable] for any network or service failure).
package adapter

import (
	"context"

	"github.com/makarov-dev/movierec/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_catalog_mock.go -package=mock

// RemoteCatalog defines transport-agnostic communication with the external
// recommendation service. Every call carries a bounded timeout; a timed-out
// call is reported as [ErrRemoteUnavailable] for that operation only.
type RemoteCatalog interface {
	// GetAllUsers fetches the full remote user snapshot. Records whose
	// external key cannot be coerced to an integer are dropped at the
	// boundary; all other fields stay raw for the reconciler to normalize.
	GetAllUsers(ctx context.Context) ([]models.RemoteUserRecord, error)

	// GetAllRatings fetches the full remote rating snapshot in the remote
	// service's iteration order. Duplicate (user, movie) pairs are preserved;
	// deduplication is the rating reconciler's concern.
	GetAllRatings(ctx context.Context) ([]models.RemoteRatingRecord, error)

	// CreateUser registers a new user with the recommendation service and
	// returns the external user key it assigned.
	CreateUser(ctx context.Context, user models.RemoteUserCreate) (int64, error)

	// Recommend fetches the recommendation set for the given external user
	// key. An unknown key yields an empty set, not an error.
	Recommend(ctx context.Context, mlUserID int64) ([]int64, error)

	// SubmitFeedback forwards a rating event to the recommendation service
	// and returns its acknowledgement.
	SubmitFeedback(ctx context.Context, event models.FeedbackEvent) (models.FeedbackAck, error)
}
