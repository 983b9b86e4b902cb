package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/mock/gomock"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	th.handler.withTraceID(next).ServeHTTP(w, r)

	assert.NotEmpty(t, w.Header().Get(traceIDHeader))
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(traceIDHeader, "incoming-trace-id")
	w := httptest.NewRecorder()
	th.handler.withTraceID(next).ServeHTTP(w, r)

	assert.Equal(t, "incoming-trace-id", w.Header().Get(traceIDHeader))
}
