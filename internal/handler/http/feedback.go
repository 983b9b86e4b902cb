package http

import (
	"encoding/json"
	"net/http"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/utils"
	"github.com/makarov-dev/movierec/models"
)

func (h *Handler) feedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no profile id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var request models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	ack, err := h.services.FeedbackService.SubmitFeedback(ctx, profileID, request.MovieID, request.Rating)
	if err != nil {
		log.Err(err).
			Int64("profileID", profileID).
			Int64("movieID", request.MovieID).
			Msg("feedback submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, ack, http.StatusOK)
}
