package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func Connect(uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	Client = client
	DB = client.Database(name)
	return DB, nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the workflows rely on. Run once at
// startup, before the server accepts traffic.
func EnsureIndexes(ctx context.Context) error {
	_, err := DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Skipped-onboarding marker rows carry no member email, so the unique
	// index must be sparse.
	_, err = DB.Collection("team-members").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("shipments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shipmentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("notifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipientEmail", Value: 1}}},
		{Keys: bson.D{{Key: "shipmentId", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection("quality-assessments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "shipmentId", Value: 1}}},
		{Keys: bson.D{{Key: "assessorEmail", Value: 1}}},
	})
	return err
}
