package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backedfi/fiat-bridge/internal/db/model"
)

// AddVote records voter on the proposal tally, creating the tally on the
// first vote. The filter excludes documents already listing the voter, so a
// re-vote degenerates into an upsert conflict on the digest and surfaces as
// a DuplicateKeyError. Returns the tally after the vote.
func (db *Database) AddVote(
	ctx context.Context, proposalDoc *model.ProposalDocument, voter string,
) (*model.ProposalDocument, error) {
	filter := bson.M{
		"_id":    proposalDoc.Digest,
		"voters": bson.M{"$ne": voter},
	}

	update := bson.M{
		"$push": bson.M{"voters": voter},
		"$setOnInsert": bson.M{
			"recipient":      proposalDoc.Recipient,
			"amount":         proposalDoc.Amount,
			"transaction_id": proposalDoc.TransactionID,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := db.collection(model.ProposalCollection).
		FindOneAndUpdate(ctx, filter, update, opts)
	if res.Err() != nil {
		if mongo.IsDuplicateKeyError(res.Err()) {
			return nil, &DuplicateKeyError{
				Key:     proposalDoc.Digest,
				Message: "voter already voted on this proposal",
			}
		}
		return nil, res.Err()
	}

	var updatedDoc model.ProposalDocument
	if err := res.Decode(&updatedDoc); err != nil {
		return nil, err
	}
	return &updatedDoc, nil
}

// RemoveVote takes a recorded vote back. Used to compensate a failed mint so
// the final vote can be cast again once the failure cause is resolved.
func (db *Database) RemoveVote(ctx context.Context, digest string, voter string) error {
	filter := bson.M{"_id": digest}
	update := bson.M{
		"$pull": bson.M{"voters": voter},
	}

	res, err := db.collection(model.ProposalCollection).
		UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     digest,
			Message: "proposal not found when removing vote",
		}
	}
	return nil
}

func (db *Database) GetProposal(ctx context.Context, digest string) (*model.ProposalDocument, error) {
	filter := bson.M{"_id": digest}

	res := db.collection(model.ProposalCollection).
		FindOne(ctx, filter)

	var proposalDoc model.ProposalDocument
	err := res.Decode(&proposalDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     digest,
				Message: "proposal not found by digest",
			}
		}
		return nil, err
	}

	return &proposalDoc, nil
}
