package services

import (
	"context"

	"github.com/shipsync/shipsync-api/models"
)

// Hand-written mock stores shared by the workflow tests.

type mockTx struct {
	calls    int
	beginErr error
}

func (m *mockTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(ctx)
}

type mockShipments struct {
	inserted  []*models.Shipment
	insertErr error

	byID     *models.Shipment
	byOwner  []models.Shipment
	accepted []models.Shipment

	setInviteeResult *models.Shipment
	setInviteeErr    error
	setInviteeCalls  int
	lastShipmentID   string
	lastEmail        string
	lastStatus       string

	setTrackingResult *models.Shipment
	setTrackingErr    error
}

func (m *mockShipments) Insert(ctx context.Context, s *models.Shipment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, s)
	return nil
}

func (m *mockShipments) FindByID(ctx context.Context, id string) (*models.Shipment, error) {
	return m.byID, nil
}

func (m *mockShipments) FindByOwner(ctx context.Context, ownerEmail string) ([]models.Shipment, error) {
	return m.byOwner, nil
}

func (m *mockShipments) FindAcceptedForInvitee(ctx context.Context, email string) ([]models.Shipment, error) {
	return m.accepted, nil
}

func (m *mockShipments) SetInviteeStatus(ctx context.Context, shipmentID, email, status string) (*models.Shipment, error) {
	m.setInviteeCalls++
	m.lastShipmentID = shipmentID
	m.lastEmail = email
	m.lastStatus = status
	return m.setInviteeResult, m.setInviteeErr
}

func (m *mockShipments) SetTrackingStatus(ctx context.Context, shipmentID, status string) (*models.Shipment, error) {
	m.lastShipmentID = shipmentID
	m.lastStatus = status
	return m.setTrackingResult, m.setTrackingErr
}

type mockNotifications struct {
	inserted  []models.Notification
	insertErr error

	pending []models.Notification

	resolveResult *models.Notification
	resolveErr    error
	resolveCalls  int
	lastID        string
	lastRecipient string
	lastStatus    string
}

func (m *mockNotifications) InsertMany(ctx context.Context, ns []models.Notification) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, ns...)
	return nil
}

func (m *mockNotifications) FindPendingByRecipient(ctx context.Context, email string) ([]models.Notification, error) {
	return m.pending, nil
}

func (m *mockNotifications) Resolve(ctx context.Context, id, recipientEmail, status string) (*models.Notification, error) {
	m.resolveCalls++
	m.lastID = id
	m.lastRecipient = recipientEmail
	m.lastStatus = status
	return m.resolveResult, m.resolveErr
}

type mockAssessments struct {
	inserted  []*models.QualityAssessment
	insertErr error

	pending []models.QualityAssessment

	resolveResult *models.QualityAssessment
	resolveErr    error
	lastID        string
	lastStatus    string
}

func (m *mockAssessments) Insert(ctx context.Context, a *models.QualityAssessment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, a)
	return nil
}

func (m *mockAssessments) FindPendingByParent(ctx context.Context, parentEmail string) ([]models.QualityAssessment, error) {
	return m.pending, nil
}

func (m *mockAssessments) Resolve(ctx context.Context, id, status string) (*models.QualityAssessment, error) {
	m.lastID = id
	m.lastStatus = status
	return m.resolveResult, m.resolveErr
}

type mockTeamMembers struct {
	inserted  []models.TeamMember
	insertErr error

	byParent []models.TeamMember

	byEmail    *models.TeamMember
	byEmailErr error

	registeredEmails []string
	markErr          error

	updateResult *models.TeamMember
	updateErr    error

	deleted   bool
	deleteErr error
}

func (m *mockTeamMembers) InsertMany(ctx context.Context, ms []models.TeamMember) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, ms...)
	return nil
}

func (m *mockTeamMembers) FindByParent(ctx context.Context, parentEmail string) ([]models.TeamMember, error) {
	return m.byParent, nil
}

func (m *mockTeamMembers) FindByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	return m.byEmail, m.byEmailErr
}

func (m *mockTeamMembers) MarkRegistered(ctx context.Context, email string) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.registeredEmails = append(m.registeredEmails, email)
	return nil
}

func (m *mockTeamMembers) Update(ctx context.Context, id string, patch TeamMemberPatch) (*models.TeamMember, error) {
	return m.updateResult, m.updateErr
}

func (m *mockTeamMembers) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleted, m.deleteErr
}

type mockUsers struct {
	inserted  []*models.User
	insertErr error

	byEmail    *models.User
	byEmailErr error
}

func (m *mockUsers) Insert(ctx context.Context, u *models.User) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, u)
	return nil
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.byEmail, m.byEmailErr
}

type mockCompanies struct {
	inserted  []*models.Company
	lastRole  string
	insertErr error

	byEmail *models.Company
	list    []models.Company
}

func (m *mockCompanies) Insert(ctx context.Context, role string, c *models.Company) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.lastRole = role
	m.inserted = append(m.inserted, c)
	return nil
}

func (m *mockCompanies) FindByEmail(ctx context.Context, role, companyEmail string) (*models.Company, error) {
	return m.byEmail, nil
}

func (m *mockCompanies) List(ctx context.Context, role string) ([]models.Company, error) {
	return m.list, nil
}

type mockActivity struct {
	entries []models.ActivityLog
}

func (m *mockActivity) Insert(ctx context.Context, entry models.ActivityLog) error {
	m.entries = append(m.entries, entry)
	return nil
}
