package services

import (
	"context"
	"time"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/utils"
)

// LogActivity records an audit entry without blocking the request.
func LogActivity(store ActivityStore, userEmail, shipmentID, action, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	go func() {
		defer cancel()
		err := store.Insert(ctx, models.ActivityLog{
			UserEmail:  userEmail,
			ShipmentID: shipmentID,
			Action:     action,
			Message:    message,
			Timestamp:  time.Now(),
		})
		if err != nil {
			utils.Logger.Warn("Failed to log activity")
		}
	}()
}
