package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tracking lifecycle of a shipment.
const (
	TrackingCreated   = "created"
	TrackingInTransit = "in-transit"
	TrackingDelivered = "delivered"
	TrackingDelayed   = "delayed"
)

// Invitee decision states.
const (
	InviteePending  = "pending"
	InviteeAccepted = "accepted"
	InviteeRejected = "rejected"
)

// Transport modes.
const (
	ModeRoad = "road"
	ModeRail = "rail"
	ModeAir  = "air"
	ModeSea  = "sea"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Destination struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

type ShipmentItem struct {
	SKU         string  `bson:"sku" json:"sku"`
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Unit        string  `bson:"unit" json:"unit"`
	WeightKg    float64 `bson:"weightKg" json:"weightKg"`
}

// Invitee is a supplier or logistic party invited to collaborate on a
// shipment. Status mirrors the matching Notification row.
type Invitee struct {
	Email  string `bson:"email" json:"email"`
	Role   string `bson:"role" json:"role"` // supplier, logistic
	Note   string `bson:"note,omitempty" json:"note,omitempty"`
	Status string `bson:"status" json:"status"` // pending, accepted, rejected
}

type Shipment struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShipmentID            string             `bson:"shipmentId" json:"shipmentId"`
	Title                 string             `bson:"title" json:"title"`
	Description           string             `bson:"description" json:"description"`
	OwnerEmail            string             `bson:"ownerEmail" json:"ownerEmail"`
	Destination           Destination        `bson:"destination" json:"destination"`
	ExpectedDeliveryDate  time.Time          `bson:"expectedDeliveryDate" json:"expectedDeliveryDate"`
	Items                 []ShipmentItem     `bson:"items" json:"items"`
	PreferredMode         string             `bson:"preferredMode" json:"preferredMode"` // road, rail, air, sea
	Priority              string             `bson:"priority" json:"priority"`           // low, medium, high
	Invitees              []Invitee          `bson:"invitees" json:"invitees"`
	QualityChecksRequired []string           `bson:"qualityChecksRequired" json:"qualityChecksRequired"`
	TrackingStatus        string             `bson:"trackingStatus" json:"trackingStatus"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}
