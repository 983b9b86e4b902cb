package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/utils"
	"github.com/makarov-dev/movierec/models"
)

// writeError maps err to an HTTP status via statusFromError and writes the
// uniform JSON error payload.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	profile, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		log.Err(err).Msg("signup failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, profile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("profileID", profile.ProfileID).Int64("mlUserID", profile.MLUserID).Msg("profile registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Message: "signup successful",
		Profile: profile,
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	profile, err := h.services.AuthService.SignIn(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("signin failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, profile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("profileID", profile.ProfileID).Msg("profile signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Message: "signin successful",
		Profile: profile,
		Token:   token.SignedString,
	}, http.StatusOK)
}
