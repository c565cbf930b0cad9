package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/types"
)

// SaveTransactionPassed locks a transaction id to the proposal digest that
// reached the threshold. Inserting is what enforces the at-most-once pass:
// a competing proposal that finalizes later hits the duplicate key.
func (db *Database) SaveTransactionPassed(
	ctx context.Context, transactionID string, digest string,
) error {
	doc := &model.TransactionDocument{
		TransactionID: transactionID,
		State:         types.StatePassed,
		Digest:        digest,
	}

	_, err := db.collection(model.TransactionCollection).
		InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     transactionID,
						Message: "transaction already finalized",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) UpdateTransactionState(
	ctx context.Context,
	transactionID string,
	qualifiedPreviousStates []types.TransactionState,
	newState types.TransactionState,
) error {
	qualifiedStateStrs := make([]string, len(qualifiedPreviousStates))
	for i, state := range qualifiedPreviousStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":   transactionID,
		"state": bson.M{"$in": qualifiedStateStrs},
	}

	update := bson.M{
		"$set": bson.M{
			"state": newState.String(),
		},
	}

	res := db.collection(model.TransactionCollection).
		FindOneAndUpdate(ctx, filter, update)

	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     transactionID,
				Message: "transaction not found or current state is not qualified states",
			}
		}
		return res.Err()
	}

	return nil
}

// DeleteTransaction removes the pass marker of a transaction id. Only used
// to compensate a failed pass-time mint.
func (db *Database) DeleteTransaction(ctx context.Context, transactionID string) error {
	filter := bson.M{"_id": transactionID}

	res, err := db.collection(model.TransactionCollection).
		DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{
			Key:     transactionID,
			Message: "transaction not found when deleting",
		}
	}
	return nil
}

func (db *Database) GetTransaction(
	ctx context.Context, transactionID string,
) (*model.TransactionDocument, error) {
	filter := bson.M{"_id": transactionID}

	res := db.collection(model.TransactionCollection).
		FindOne(ctx, filter)

	var transactionDoc model.TransactionDocument
	err := res.Decode(&transactionDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     transactionID,
				Message: "transaction not found by id",
			}
		}
		return nil, err
	}

	return &transactionDoc, nil
}
