package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/services"
	"github.com/shipsync/shipsync-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

type stubTx struct{}

func (stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifications struct {
	resolveResult *models.Notification
}

func (s *stubNotifications) InsertMany(ctx context.Context, ns []models.Notification) error {
	return nil
}

func (s *stubNotifications) FindPendingByRecipient(ctx context.Context, email string) ([]models.Notification, error) {
	return nil, nil
}

func (s *stubNotifications) Resolve(ctx context.Context, id, recipientEmail, status string) (*models.Notification, error) {
	return s.resolveResult, nil
}

type stubShipments struct {
	setInviteeResult *models.Shipment
}

func (s *stubShipments) Insert(ctx context.Context, sh *models.Shipment) error { return nil }

func (s *stubShipments) FindByID(ctx context.Context, id string) (*models.Shipment, error) {
	return nil, nil
}

func (s *stubShipments) FindByOwner(ctx context.Context, ownerEmail string) ([]models.Shipment, error) {
	return nil, nil
}

func (s *stubShipments) FindAcceptedForInvitee(ctx context.Context, email string) ([]models.Shipment, error) {
	return nil, nil
}

func (s *stubShipments) SetInviteeStatus(ctx context.Context, shipmentID, email, status string) (*models.Shipment, error) {
	return s.setInviteeResult, nil
}

func (s *stubShipments) SetTrackingStatus(ctx context.Context, shipmentID, status string) (*models.Shipment, error) {
	return nil, nil
}

type stubActivity struct{}

func (stubActivity) Insert(ctx context.Context, entry models.ActivityLog) error { return nil }

func TestResolveInvitationHandlerBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/invitations/resolve", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	ResolveInvitation(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestResolveInvitationHandlerMissingFields(t *testing.T) {
	body := `{"notificationId":"n1","shipmentId":"","recipientEmail":"a@b.com","status":"accepted"}`
	req := httptest.NewRequest(http.MethodPost, "/invitations/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ResolveInvitation(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestResolveInvitationHandlerSuccess(t *testing.T) {
	Stores = services.Stores{
		Notifications: &stubNotifications{resolveResult: &models.Notification{Status: models.InviteeAccepted, Read: true}},
		Shipments:     &stubShipments{setInviteeResult: &models.Shipment{ShipmentID: "SH-X"}},
		Activity:      stubActivity{},
		Tx:            stubTx{},
	}

	body := `{"notificationId":"n1","shipmentId":"SH-X","recipientEmail":"a@b.com","status":"accepted"}`
	req := httptest.NewRequest(http.MethodPost, "/invitations/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ResolveInvitation(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestResolveInvitationHandlerNotFound(t *testing.T) {
	Stores = services.Stores{
		Notifications: &stubNotifications{},
		Shipments:     &stubShipments{},
		Activity:      stubActivity{},
		Tx:            stubTx{},
	}

	body := `{"notificationId":"missing","shipmentId":"SH-X","recipientEmail":"a@b.com","status":"rejected"}`
	req := httptest.NewRequest(http.MethodPost, "/invitations/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ResolveInvitation(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invitation not found") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateShipmentHandlerValidation(t *testing.T) {
	Stores = services.Stores{
		Notifications: &stubNotifications{},
		Shipments:     &stubShipments{},
		Activity:      stubActivity{},
		Tx:            stubTx{},
	}

	body := `{"title":"","ownerEmail":"o@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateShipment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
