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

func SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req services.SubmitAssessmentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessment, err := services.SubmitAssessment(ctx, Stores, req)
	if err != nil {
		utils.Logger.Warn("Failed to submit assessment")
		respondServiceError(w, err)
		return
	}

	services.LogActivity(Stores.Activity, req.AssessorEmail, req.ShipmentID, "assessment.submitted", "Quality assessment submitted for "+req.ItemSKU)

	utils.RespondWithJSON(w, http.StatusCreated, "Quality assessment submitted successfully", map[string]interface{}{"assessment": assessment})
}

func GetPendingAssessments(w http.ResponseWriter, r *http.Request) {
	parentEmail := r.URL.Query().Get("parentEmail")
	if parentEmail == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "parentEmail is required", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessments, err := Stores.Assessments.FindPendingByParent(ctx, parentEmail)
	if err != nil {
		utils.Logger.Warn("Failed to fetch assessments")
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching assessments", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Assessments fetched", map[string]interface{}{"assessments": assessments})
}

func ResolveAssessment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessment, err := services.ResolveAssessment(ctx, Stores, id, req.Status)
	if err != nil {
		utils.Logger.Warn("Failed to resolve assessment")
		respondServiceError(w, err)
		return
	}

	email, _ := utils.GetUserEmail(r)
	services.LogActivity(Stores.Activity, email, assessment.ShipmentID, "assessment."+req.Status, "Quality assessment "+req.Status)

	utils.RespondWithJSON(w, http.StatusOK, "Assessment updated", map[string]interface{}{"assessment": assessment})
}
