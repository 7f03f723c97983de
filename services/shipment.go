package services

import (
	"context"
	"time"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/utils"
)

type CreateShipmentInput struct {
	Title                 string                `json:"title"`
	Description           string                `json:"description"`
	OwnerEmail            string                `json:"ownerEmail"`
	Destination           models.Destination    `json:"destination"`
	ExpectedDeliveryDate  time.Time             `json:"expectedDeliveryDate"`
	Items                 []models.ShipmentItem `json:"items"`
	PreferredMode         string                `json:"preferredMode"`
	Priority              string                `json:"priority"`
	Invitees              []models.Invitee      `json:"invitees"`
	QualityChecksRequired []string              `json:"qualityChecksRequired"`
}

// CreateShipment persists a new shipment and fans out one invitation
// notification per invitee. Both writes run inside one transaction so a
// shipment never exists without its notification rows.
//
// Caller-supplied invitee statuses and tracking status are ignored; every
// invitee starts pending and the shipment starts in "created".
func CreateShipment(ctx context.Context, st Stores, in CreateShipmentInput) (*models.Shipment, error) {
	if in.Title == "" || in.OwnerEmail == "" || in.ExpectedDeliveryDate.IsZero() || len(in.Items) == 0 {
		return nil, Invalid("missing required fields")
	}
	d := in.Destination
	if d.Address == "" || d.City == "" || d.State == "" || d.Country == "" {
		return nil, Invalid("missing required fields")
	}
	for _, item := range in.Items {
		if item.SKU == "" || item.Unit == "" || item.Quantity <= 0 {
			return nil, Invalid("invalid shipment item")
		}
	}
	for _, inv := range in.Invitees {
		if inv.Email == "" {
			return nil, Invalid("invitee email is required")
		}
		if inv.Role != models.RoleSupplier && inv.Role != models.RoleLogistic {
			return nil, Invalid("invalid invitee role")
		}
	}

	mode := in.PreferredMode
	if mode == "" {
		mode = models.ModeRoad
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	shipment := &models.Shipment{
		ShipmentID:            utils.GenerateShipmentID(in.OwnerEmail, now),
		Title:                 in.Title,
		Description:           in.Description,
		OwnerEmail:            in.OwnerEmail,
		Destination:           in.Destination,
		ExpectedDeliveryDate:  in.ExpectedDeliveryDate,
		Items:                 in.Items,
		PreferredMode:         mode,
		Priority:              priority,
		QualityChecksRequired: in.QualityChecksRequired,
		TrackingStatus:        models.TrackingCreated,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	shipment.Invitees = make([]models.Invitee, 0, len(in.Invitees))
	for _, inv := range in.Invitees {
		shipment.Invitees = append(shipment.Invitees, models.Invitee{
			Email:  inv.Email,
			Role:   inv.Role,
			Note:   inv.Note,
			Status: models.InviteePending,
		})
	}

	err := st.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := st.Shipments.Insert(ctx, shipment); err != nil {
			return err
		}
		if len(shipment.Invitees) == 0 {
			return nil
		}
		notifications := make([]models.Notification, 0, len(shipment.Invitees))
		for _, inv := range shipment.Invitees {
			notifications = append(notifications, models.Notification{
				RecipientEmail: inv.Email,
				SenderEmail:    shipment.OwnerEmail,
				ShipmentID:     shipment.ShipmentID,
				Type:           models.NotificationInvitation,
				Role:           inv.Role,
				Status:         models.InviteePending,
				Read:           false,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
		return st.Notifications.InsertMany(ctx, notifications)
	})
	if err != nil {
		return nil, err
	}

	return shipment, nil
}

// UpdateTrackingStatus moves a shipment between lifecycle stages.
func UpdateTrackingStatus(ctx context.Context, st Stores, shipmentID, status string) (*models.Shipment, error) {
	switch status {
	case models.TrackingCreated, models.TrackingInTransit, models.TrackingDelivered, models.TrackingDelayed:
	default:
		return nil, Invalid("invalid tracking status")
	}

	shipment, err := st.Shipments.SetTrackingStatus(ctx, shipmentID, status)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}
	return shipment, nil
}
