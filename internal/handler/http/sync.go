package http

import (
	"net/http"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/utils"
)

// triggerSync drives a full reconciliation pass on demand. Concurrent
// triggers are collapsed by the sync service's single-flight guard, so this
// endpoint can never start a second pass against the store.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	result := h.syncJob.TriggerNow(ctx)
	if !result.Success {
		log.Error().Str("error", result.Error).Msg("manual sync pass failed")
		utils.WriteJSON(w, result, http.StatusBadGateway)
		return
	}

	log.Info().
		Int("users", result.Users).
		Int("ratings", result.Ratings).
		Int("deferred", result.Deferred).
		Msg("manual sync pass finished")

	utils.WriteJSON(w, result, http.StatusOK)
}
