package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req services.CreateShipmentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shipment, err := services.CreateShipment(ctx, Stores, req)
	if err != nil {
		utils.Logger.Warn("Failed to create shipment")
		respondServiceError(w, err)
		return
	}

	services.LogActivity(Stores.Activity, shipment.OwnerEmail, shipment.ShipmentID, "shipment.created", "Shipment created with "+shipment.TrackingStatus+" status")

	// Invitation mail is best effort; the notification rows are the source
	// of truth for the inbox.
	if os.Getenv("SMTP_EMAIL") != "" {
		for _, invitee := range shipment.Invitees {
			go func(email string) {
				if err := utils.SendInvitationEmail(email, shipment.OwnerEmail, shipment.ShipmentID); err != nil {
					utils.Logger.Warn("Failed to send invitation email")
				}
			}(invitee.Email)
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, "Shipment created successfully", map[string]interface{}{"shipment": shipment})
}

func GetShipmentsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerEmail := r.URL.Query().Get("ownerEmail")
	if ownerEmail == "" {
		ownerEmail, _ = utils.GetUserEmail(r)
	}
	if ownerEmail == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "ownerEmail is required", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shipments, err := Stores.Shipments.FindByOwner(ctx, ownerEmail)
	if err != nil {
		utils.Logger.Warn("Failed to fetch shipments")
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching shipments", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Shipments fetched", map[string]interface{}{"shipments": shipments})
}

func GetShipment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shipment, err := Stores.Shipments.FindByID(ctx, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching shipment", "")
		return
	}
	if shipment == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Shipment not found", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Shipment fetched", map[string]interface{}{"shipment": shipment})
}

// GetAssignedShipments lists the shipments where the given email is an
// accepted invitee. Backs the supplier and logistic dashboards.
func GetAssignedShipments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		email, _ = utils.GetUserEmail(r)
	}
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shipments, err := Stores.Shipments.FindAcceptedForInvitee(ctx, email)
	if err != nil {
		utils.Logger.Warn("Failed to fetch assigned shipments")
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching shipments", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Shipments fetched", map[string]interface{}{"shipments": shipments})
}

func UpdateTrackingStatus(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["shipmentId"]

	var req struct {
		TrackingStatus string `json:"trackingStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shipment, err := services.UpdateTrackingStatus(ctx, Stores, shipmentID, req.TrackingStatus)
	if err != nil {
		utils.Logger.Warn("Failed to update tracking status")
		respondServiceError(w, err)
		return
	}

	email, _ := utils.GetUserEmail(r)
	services.LogActivity(Stores.Activity, email, shipmentID, "shipment.tracking", "Tracking status set to "+req.TrackingStatus)

	utils.RespondWithJSON(w, http.StatusOK, "Tracking status updated", map[string]interface{}{"shipment": shipment})
}
