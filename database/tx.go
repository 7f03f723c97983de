package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Tx runs callbacks inside a Mongo session transaction. Requires a replica
// set or mongos deployment.
type Tx struct {
	client *mongo.Client
}

func NewTx(client *mongo.Client) *Tx {
	return &Tx{client: client}
}

func (t *Tx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
