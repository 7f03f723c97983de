package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func GetPendingInvitations(w http.ResponseWriter, r *http.Request) {
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

	invitations, err := Stores.Notifications.FindPendingByRecipient(ctx, email)
	if err != nil {
		utils.Logger.Warn("Failed to fetch invitations")
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching invitations", "")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "Invitations fetched", map[string]interface{}{"invitations": invitations})
}

func ResolveInvitation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NotificationID string `json:"notificationId"`
		ShipmentID     string `json:"shipmentId"`
		RecipientEmail string `json:"recipientEmail"`
		Status         string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON format", "")
		return
	}
	if req.NotificationID == "" || req.ShipmentID == "" || req.RecipientEmail == "" || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notification, shipment, err := services.ResolveInvitation(ctx, Stores, req.NotificationID, req.ShipmentID, req.RecipientEmail, req.Status)
	if err != nil {
		utils.Logger.Warn("Failed to resolve invitation")
		respondServiceError(w, err)
		return
	}

	services.LogActivity(Stores.Activity, req.RecipientEmail, req.ShipmentID, "invitation."+req.Status, "Invitation "+req.Status)

	utils.RespondWithJSON(w, http.StatusOK, "Invitation updated", map[string]interface{}{
		"notification": notification,
		"shipment":     shipment,
	})
}
