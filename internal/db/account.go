package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backedfi/fiat-bridge/internal/db/model"
)

// SaveAccountApproval records or revokes approval of an external account as
// a burn target. Both directions are idempotent.
func (db *Database) SaveAccountApproval(
	ctx context.Context, account string, approved bool,
) error {
	collection := db.collection(model.ApprovedAccountCollection)

	if approved {
		_, err := collection.InsertOne(ctx, &model.ApprovedAccountDocument{
			Account: account,
		})
		if mongo.IsDuplicateKeyError(err) {
			// already approved
			return nil
		}
		return err
	}

	_, err := collection.DeleteOne(ctx, bson.M{"_id": account})
	return err
}

func (db *Database) IsAccountApproved(ctx context.Context, account string) (bool, error) {
	err := db.collection(model.ApprovedAccountCollection).
		FindOne(ctx, bson.M{"_id": account}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
