package handlers

import (
	"errors"
	"net/http"

	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

// Stores is wired once at startup, before the router starts serving.
var Stores services.Stores

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, services.ErrInvalidDecision),
		errors.Is(err, services.ErrInvalidRole):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrShipmentNotFound),
		errors.Is(err, services.ErrAssessmentNotFound),
		errors.Is(err, services.ErrTeamMemberNotFound),
		errors.Is(err, services.ErrCompanyNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, services.ErrUserExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error(), "")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials", "")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error", "")
	}
}
