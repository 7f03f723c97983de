package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Top-level account roles.
const (
	RoleOwner        = "owner"
	RoleSupplier     = "supplier"
	RoleLogistic     = "logistic"
	RoleSupplierTeam = "supplier-team"
	RoleLogisticTeam = "logistic-team"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Role         string             `bson:"role" json:"role"`
	TeamRole     string             `bson:"teamRole,omitempty" json:"teamRole,omitempty"`
	ParentEmail  string             `bson:"parentEmail,omitempty" json:"parentEmail,omitempty"`
	IsTeamMember bool               `bson:"isTeamMember" json:"isTeamMember"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
