package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backedfi/fiat-bridge/internal/db/model"
)

// SaveFeeRecipients replaces the ordered recipient set atomically: the set
// lives in one document and is never patched element-wise.
func (db *Database) SaveFeeRecipients(
	ctx context.Context, recipientsDoc *model.FeeRecipientsDocument,
) error {
	filter := bson.M{"_id": recipientsDoc.ID}

	_, err := db.collection(model.FeeRecipientsCollection).
		ReplaceOne(ctx, filter, recipientsDoc, options.Replace().SetUpsert(true))
	return err
}

// GetFeeRecipients returns the ordered recipient set; an empty set when
// recipients were never configured or were cleared.
func (db *Database) GetFeeRecipients(ctx context.Context) (*model.FeeRecipientsDocument, error) {
	var recipientsDoc model.FeeRecipientsDocument
	err := db.collection(model.FeeRecipientsCollection).
		FindOne(ctx, bson.M{}).Decode(&recipientsDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.NewFeeRecipientsDocument(nil), nil
		}
		return nil, err
	}

	return &recipientsDoc, nil
}
