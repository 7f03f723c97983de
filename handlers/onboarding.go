package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func SaveCompany(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	var req services.OnboardCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	company, err := services.SaveCompany(ctx, Stores, role, req)
	if err != nil {
		utils.Logger.Warn("Failed to save company profile")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, "Company profile saved", map[string]interface{}{"company": company})
}

func GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]
	companyEmail := r.URL.Query().Get("companyEmail")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	company, err := services.GetCompanyProfile(ctx, Stores, role, companyEmail)
	if err != nil {
		utils.Logger.Warn("Failed to fetch company profile")
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Company profile fetched", map[string]interface{}{"company": company})
}

// ListLogisticCompanies backs the owner's logistics-partner picker.
func ListLogisticCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	companies, err := Stores.Companies.List(ctx, models.RoleLogistic)
	if err != nil {
		utils.Logger.Warn("Failed to fetch logistic companies")
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching logistic companies", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Logistic companies fetched", map[string]interface{}{"companies": companies})
}
