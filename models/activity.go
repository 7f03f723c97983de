package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail  string             `bson:"userEmail"`
	ShipmentID string             `bson:"shipmentId,omitempty"`
	Action     string             `bson:"action"`
	Message    string             `bson:"message"`
	Timestamp  time.Time          `bson:"timestamp"`
}
