package http

import (
	"net/http"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/utils"
	"github.com/makarov-dev/movierec/models"
)

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no profile id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	items, err := h.services.RecommendationService.GetRecommendations(ctx, profileID)
	if err != nil {
		log.Err(err).Int64("profileID", profileID).Msg("fetching recommendations failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RecommendationsResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) watchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no profile id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	items, err := h.services.RecommendationService.GetWatchlist(ctx, profileID)
	if err != nil {
		log.Err(err).Int64("profileID", profileID).Msg("fetching watchlist failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.WatchlistResponse{Items: items, Length: len(items)}, http.StatusOK)
}
