package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationInvitation is the only notification type today.
const NotificationInvitation = "invitation"

// Notification is one row per invited party per shipment. Its status must
// stay in agreement with the matching invitee entry embedded in the
// Shipment document; both are updated inside one transaction.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecipientEmail string             `bson:"recipientEmail" json:"recipientEmail"`
	SenderEmail    string             `bson:"senderEmail" json:"senderEmail"`
	ShipmentID     string             `bson:"shipmentId" json:"shipmentId"`
	Type           string             `bson:"type" json:"type"`
	Role           string             `bson:"role" json:"role"`     // supplier, logistic
	Status         string             `bson:"status" json:"status"` // pending, accepted, rejected
	Read           bool               `bson:"read" json:"read"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
