package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment resolution states.
const (
	AssessmentPending  = "pending"
	AssessmentApproved = "approved"
	AssessmentRejected = "rejected"
)

// QualityAssessment is a per-item inspection submitted by a team member
// and resolved by the shipment owner.
type QualityAssessment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShipmentID        string             `bson:"shipmentId" json:"shipmentId"`
	ItemSKU           string             `bson:"itemSku" json:"itemSku"`
	ItemDescription   string             `bson:"itemDescription,omitempty" json:"itemDescription,omitempty"`
	AssessorEmail     string             `bson:"assessorEmail" json:"assessorEmail"`
	ParentEmail       string             `bson:"parentEmail" json:"parentEmail"`
	AssessmentNotes   string             `bson:"assessmentNotes,omitempty" json:"assessmentNotes,omitempty"`
	QualityImages     []string           `bson:"qualityImages" json:"qualityImages"` // data-URL encoded
	IsVerifiedByOwner bool               `bson:"isVerifiedByOwner" json:"isVerifiedByOwner"`
	Status            string             `bson:"status" json:"status"` // pending, approved, rejected
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
