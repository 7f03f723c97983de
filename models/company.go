package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompanyTeamMember struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}

// Company is an onboarding profile saved per role (owner, supplier or
// logistic) into its own collection.
type Company struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CompanyName   string              `bson:"companyName" json:"companyName"`
	OwnerName     string              `bson:"ownerName" json:"ownerName"`
	ContactNumber string              `bson:"contactNumber" json:"contactNumber"`
	CompanyEmail  string              `bson:"companyEmail" json:"companyEmail"`
	GSTNumber     string              `bson:"gstNumber" json:"gstNumber"`
	Address       string              `bson:"address" json:"address"`
	TeamMembers   []CompanyTeamMember `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	TeamSkipped   bool                `bson:"teamSkipped" json:"teamSkipped"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
