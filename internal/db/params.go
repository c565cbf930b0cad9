package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backedfi/fiat-bridge/internal/db/model"
)

// SaveBridgeParams replaces the bridge params document whole. Callers read
// the current document, apply their change and save the result; the service
// serializes mutations so the read-modify-write cannot interleave.
func (db *Database) SaveBridgeParams(
	ctx context.Context, params *model.BridgeParamsDocument,
) error {
	filter := bson.M{"type": model.BridgeParamsType}
	update := bson.M{"$set": params}

	_, err := db.collection(model.BridgeParamsCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetBridgeParams returns the configured bridge params, or the defaults of
// a freshly deployed bridge when none were saved yet.
func (db *Database) GetBridgeParams(ctx context.Context) (*model.BridgeParamsDocument, error) {
	filter := bson.M{"type": model.BridgeParamsType}

	var params model.BridgeParamsDocument
	err := db.collection(model.BridgeParamsCollection).
		FindOne(ctx, filter).Decode(&params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.DefaultBridgeParams(), nil
		}
		return nil, err
	}

	return &params, nil
}
