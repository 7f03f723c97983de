package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team roles assignable to a pre-provisioned member.
const (
	TeamRoleOperations      = "operations"
	TeamRoleQuality         = "quality"
	TeamRoleFinance         = "finance"
	TeamRoleDeliveryPartner = "delivery-partner"
)

// TeamMember is a person pre-provisioned under a parent company account
// before they have their own login. When a user registers with a matching
// email the row is consumed and Registered flips to true.
//
// A row with Skipped=true and no member email is a marker that the parent
// skipped team onboarding.
type TeamMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	ParentEmail string             `bson:"parentEmail" json:"parentEmail"`
	ParentRole  string             `bson:"parentRole" json:"parentRole"` // supplier, logistic
	TeamRole    string             `bson:"teamRole,omitempty" json:"teamRole,omitempty"`
	Registered  bool               `bson:"registered" json:"registered"`
	Skipped     bool               `bson:"skipped" json:"skipped"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
