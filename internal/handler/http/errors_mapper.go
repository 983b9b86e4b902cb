package http

import (
	"errors"
	"net/http"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/service"
	"github.com/makarov-dev/movierec/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidRating:           http.StatusBadRequest,
	service.ErrUnknownMovie:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	adapter.ErrRemoteUnavailable: http.StatusBadGateway,

	store.ErrProfileAlreadyExists: http.StatusConflict,
	store.ErrProfileNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
