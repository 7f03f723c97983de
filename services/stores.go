package services

import (
	"context"

	"github.com/shipsync/shipsync-api/models"
)

// Store lookups return (nil, nil) when no document matches; workflow
// functions translate that into their domain not-found errors.

type ShipmentStore interface {
	Insert(ctx context.Context, s *models.Shipment) error
	FindByID(ctx context.Context, id string) (*models.Shipment, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]models.Shipment, error)
	FindAcceptedForInvitee(ctx context.Context, email string) ([]models.Shipment, error)
	SetInviteeStatus(ctx context.Context, shipmentID, email, status string) (*models.Shipment, error)
	SetTrackingStatus(ctx context.Context, shipmentID, status string) (*models.Shipment, error)
}

type NotificationStore interface {
	InsertMany(ctx context.Context, ns []models.Notification) error
	FindPendingByRecipient(ctx context.Context, email string) ([]models.Notification, error)
	Resolve(ctx context.Context, id, recipientEmail, status string) (*models.Notification, error)
}

type AssessmentStore interface {
	Insert(ctx context.Context, a *models.QualityAssessment) error
	FindPendingByParent(ctx context.Context, parentEmail string) ([]models.QualityAssessment, error)
	Resolve(ctx context.Context, id, status string) (*models.QualityAssessment, error)
}

// TeamMemberPatch applies only its non-empty fields.
type TeamMemberPatch struct {
	Name     string
	Email    string
	TeamRole string
}

type TeamMemberStore interface {
	InsertMany(ctx context.Context, ms []models.TeamMember) error
	FindByParent(ctx context.Context, parentEmail string) ([]models.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	MarkRegistered(ctx context.Context, email string) error
	Update(ctx context.Context, id string, patch TeamMemberPatch) (*models.TeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type CompanyStore interface {
	Insert(ctx context.Context, role string, c *models.Company) error
	FindByEmail(ctx context.Context, role, companyEmail string) (*models.Company, error)
	List(ctx context.Context, role string) ([]models.Company, error)
}

type ActivityStore interface {
	Insert(ctx context.Context, entry models.ActivityLog) error
}

// TxRunner runs fn inside one database transaction; any error aborts and
// rolls back every write issued through the derived context.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores bundles every persistence handle the workflows need. Wired once
// at startup.
type Stores struct {
	Shipments     ShipmentStore
	Notifications NotificationStore
	Assessments   AssessmentStore
	TeamMembers   TeamMemberStore
	Users         UserStore
	Companies     CompanyStore
	Activity      ActivityStore
	Tx            TxRunner
}
