package services

import (
	"context"

	"github.com/shipsync/shipsync-api/models"
)

// ResolveInvitation propagates an invitee's accept/reject decision to both
// the notification row and the matching invitee entry embedded in the
// shipment. Both updates run inside one transaction: either both change or
// neither does.
func ResolveInvitation(ctx context.Context, st Stores, notificationID, shipmentID, recipientEmail, decision string) (*models.Notification, *models.Shipment, error) {
	if decision != models.InviteeAccepted && decision != models.InviteeRejected {
		return nil, nil, ErrInvalidDecision
	}

	var (
		notification *models.Notification
		shipment     *models.Shipment
	)
	err := st.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		notification, err = st.Notifications.Resolve(ctx, notificationID, recipientEmail, decision)
		if err != nil {
			return err
		}
		if notification == nil {
			return ErrInvitationNotFound
		}

		shipment, err = st.Shipments.SetInviteeStatus(ctx, shipmentID, recipientEmail, decision)
		if err != nil {
			return err
		}
		if shipment == nil {
			return ErrShipmentNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return notification, shipment, nil
}
