package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func AddTeamMembers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamMembers []services.TeamMemberInput `json:"teamMembers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := services.AddTeamMembers(ctx, Stores, req.TeamMembers); err != nil {
		utils.Logger.Warn("Failed to add team members")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, "Team members added successfully", nil)
}

func GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	parentEmail := r.URL.Query().Get("parentEmail")
	if parentEmail == "" {
		parentEmail, _ = utils.GetUserEmail(r)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skipped, members, err := services.ListTeamMembers(ctx, Stores, parentEmail)
	if err != nil {
		utils.Logger.Warn("Failed to fetch team members")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Team members fetched", map[string]interface{}{
		"skipped":     skipped,
		"teamMembers": members,
	})
}

func UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		TeamRole string `json:"teamRole"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := services.UpdateTeamMember(ctx, Stores, id, services.TeamMemberPatch{
		Name:     req.Name,
		Email:    req.Email,
		TeamRole: req.TeamRole,
	})
	if err != nil {
		utils.Logger.Warn("Failed to update team member")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Team member updated successfully", map[string]interface{}{"teamMember": member})
}

func DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := services.DeleteTeamMember(ctx, Stores, id); err != nil {
		utils.Logger.Warn("Failed to delete team member")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Team member deleted successfully", nil)
}
