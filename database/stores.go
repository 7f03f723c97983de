package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/services"
)

// Mongo-backed implementations of the services store interfaces. Lookups
// return (nil, nil) when nothing matches; unique-index rejections map to
// services.ErrDuplicateKey.

func translateErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrDuplicateKey
	}
	return err
}

type Shipments struct {
	db *mongo.Database
}

func NewShipments(db *mongo.Database) *Shipments { return &Shipments{db: db} }

func (s *Shipments) col() *mongo.Collection { return s.db.Collection("shipments") }

func (s *Shipments) Insert(ctx context.Context, shipment *models.Shipment) error {
	res, err := s.col().InsertOne(ctx, shipment)
	if err != nil {
		return translateErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		shipment.ID = oid
	}
	return nil
}

func (s *Shipments) FindByID(ctx context.Context, id string) (*models.Shipment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var shipment models.Shipment
	err = s.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&shipment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (s *Shipments) FindByOwner(ctx context.Context, ownerEmail string) ([]models.Shipment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col().Find(ctx, bson.M{"ownerEmail": ownerEmail}, opts)
	if err != nil {
		return nil, err
	}

	shipments := []models.Shipment{}
	if err := cursor.All(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (s *Shipments) FindAcceptedForInvitee(ctx context.Context, email string) ([]models.Shipment, error) {
	filter := bson.M{
		"invitees": bson.M{
			"$elemMatch": bson.M{
				"email":  email,
				"status": models.InviteeAccepted,
			},
		},
	}
	cursor, err := s.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	shipments := []models.Shipment{}
	if err := cursor.All(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (s *Shipments) SetInviteeStatus(ctx context.Context, shipmentID, email, status string) (*models.Shipment, error) {
	filter := bson.M{"shipmentId": shipmentID, "invitees.email": email}
	update := bson.M{"$set": bson.M{
		"invitees.$.status": status,
		"updatedAt":         time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var shipment models.Shipment
	err := s.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&shipment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (s *Shipments) SetTrackingStatus(ctx context.Context, shipmentID, status string) (*models.Shipment, error) {
	update := bson.M{"$set": bson.M{
		"trackingStatus": status,
		"updatedAt":      time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var shipment models.Shipment
	err := s.col().FindOneAndUpdate(ctx, bson.M{"shipmentId": shipmentID}, update, opts).Decode(&shipment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

type Notifications struct {
	db *mongo.Database
}

func NewNotifications(db *mongo.Database) *Notifications { return &Notifications{db: db} }

func (n *Notifications) col() *mongo.Collection { return n.db.Collection("notifications") }

func (n *Notifications) InsertMany(ctx context.Context, ns []models.Notification) error {
	docs := make([]interface{}, 0, len(ns))
	for _, notification := range ns {
		docs = append(docs, notification)
	}
	_, err := n.col().InsertMany(ctx, docs)
	return translateErr(err)
}

func (n *Notifications) FindPendingByRecipient(ctx context.Context, email string) ([]models.Notification, error) {
	filter := bson.M{
		"recipientEmail": email,
		"status":         models.InviteePending,
		"type":           models.NotificationInvitation,
	}
	cursor, err := n.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *Notifications) Resolve(ctx context.Context, id, recipientEmail, status string) (*models.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	filter := bson.M{"_id": oid, "recipientEmail": recipientEmail}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"read":      true,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notification models.Notification
	err = n.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&notification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

type Assessments struct {
	db *mongo.Database
}

func NewAssessments(db *mongo.Database) *Assessments { return &Assessments{db: db} }

func (a *Assessments) col() *mongo.Collection { return a.db.Collection("quality-assessments") }

func (a *Assessments) Insert(ctx context.Context, assessment *models.QualityAssessment) error {
	res, err := a.col().InsertOne(ctx, assessment)
	if err != nil {
		return translateErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = oid
	}
	return nil
}

func (a *Assessments) FindPendingByParent(ctx context.Context, parentEmail string) ([]models.QualityAssessment, error) {
	filter := bson.M{
		"parentEmail":       parentEmail,
		"isVerifiedByOwner": false,
		"status":            models.AssessmentPending,
	}
	cursor, err := a.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	assessments := []models.QualityAssessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (a *Assessments) Resolve(ctx context.Context, id, status string) (*models.QualityAssessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{
		"status":            status,
		"isVerifiedByOwner": true,
		"updatedAt":         time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var assessment models.QualityAssessment
	err = a.col().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&assessment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

type TeamMembers struct {
	db *mongo.Database
}

func NewTeamMembers(db *mongo.Database) *TeamMembers { return &TeamMembers{db: db} }

func (t *TeamMembers) col() *mongo.Collection { return t.db.Collection("team-members") }

func (t *TeamMembers) InsertMany(ctx context.Context, ms []models.TeamMember) error {
	docs := make([]interface{}, 0, len(ms))
	for _, member := range ms {
		docs = append(docs, member)
	}
	_, err := t.col().InsertMany(ctx, docs)
	return translateErr(err)
}

func (t *TeamMembers) FindByParent(ctx context.Context, parentEmail string) ([]models.TeamMember, error) {
	cursor, err := t.col().Find(ctx, bson.M{"parentEmail": parentEmail})
	if err != nil {
		return nil, err
	}

	members := []models.TeamMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (t *TeamMembers) FindByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := t.col().FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (t *TeamMembers) MarkRegistered(ctx context.Context, email string) error {
	update := bson.M{"$set": bson.M{
		"registered": true,
		"updatedAt":  time.Now(),
	}}
	_, err := t.col().UpdateOne(ctx, bson.M{"email": email}, update)
	return err
}

func (t *TeamMembers) Update(ctx context.Context, id string, patch services.TeamMemberPatch) (*models.TeamMember, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != "" {
		set["name"] = patch.Name
	}
	if patch.Email != "" {
		set["email"] = patch.Email
	}
	if patch.TeamRole != "" {
		set["teamRole"] = patch.TeamRole
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member models.TeamMember
	err = t.col().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}

func (t *TeamMembers) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := t.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type Users struct {
	db *mongo.Database
}

func NewUsers(db *mongo.Database) *Users { return &Users{db: db} }

func (u *Users) col() *mongo.Collection { return u.db.Collection("users") }

func (u *Users) Insert(ctx context.Context, user *models.User) error {
	res, err := u.col().InsertOne(ctx, user)
	if err != nil {
		return translateErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.col().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type Companies struct {
	db *mongo.Database
}

func NewCompanies(db *mongo.Database) *Companies { return &Companies{db: db} }

func (c *Companies) col(role string) *mongo.Collection {
	return c.db.Collection(role + "-companies")
}

func (c *Companies) Insert(ctx context.Context, role string, company *models.Company) error {
	res, err := c.col(role).InsertOne(ctx, company)
	if err != nil {
		return translateErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		company.ID = oid
	}
	return nil
}

func (c *Companies) FindByEmail(ctx context.Context, role, companyEmail string) (*models.Company, error) {
	var company models.Company
	err := c.col(role).FindOne(ctx, bson.M{"companyEmail": companyEmail}).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *Companies) List(ctx context.Context, role string) ([]models.Company, error) {
	cursor, err := c.col(role).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	companies := []models.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

type Activity struct {
	db *mongo.Database
}

func NewActivity(db *mongo.Database) *Activity { return &Activity{db: db} }

func (a *Activity) Insert(ctx context.Context, entry models.ActivityLog) error {
	_, err := a.db.Collection("activity-log").InsertOne(ctx, entry)
	return err
}

// NewStores wires every Mongo store into one bundle.
func NewStores(db *mongo.Database, client *mongo.Client) services.Stores {
	return services.Stores{
		Shipments:     NewShipments(db),
		Notifications: NewNotifications(db),
		Assessments:   NewAssessments(db),
		TeamMembers:   NewTeamMembers(db),
		Users:         NewUsers(db),
		Companies:     NewCompanies(db),
		Activity:      NewActivity(db),
		Tx:            NewTx(client),
	}
}
