package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func RegisterUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Only Post Allowed", "")
		return
	}

	var req services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := services.RegisterUser(ctx, Stores, req)
	if err != nil {
		utils.Logger.Warn("Failed to register user")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, "Registration successful", map[string]interface{}{"user": user})
}

func LoginUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Only Post Allowed", "")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, token, err := services.LoginUser(ctx, Stores, req.Email, req.Password)
	if err != nil {
		utils.Logger.Warn("Failed login attempt")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID.Hex(),
			"email":    user.Email,
			"name":     user.Name,
			"role":     user.Role,
			"teamRole": user.TeamRole,
		},
	})
}

func Profile(w http.ResponseWriter, r *http.Request) {
	email, err := utils.GetUserEmail(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing user email", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := Stores.Users.FindByEmail(ctx, email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error finding user", "")
		return
	}
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "User fetched", map[string]interface{}{"user": user})
}
