package model

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backedfi/fiat-bridge/internal/config"
)

const setupTimeout = 30 * time.Second

type index struct {
	Keys   bson.D
	Unique bool
}

var collectionIndexes = map[string][]index{
	ProposalCollection: {
		{Keys: bson.D{{Key: "transaction_id", Value: 1}}},
	},
	TransactionCollection: {},
	BridgeParamsCollection: {
		{Keys: bson.D{{Key: "type", Value: 1}}, Unique: true},
	},
	FeeRecipientsCollection:   {},
	ApprovedAccountCollection: {},
}

// Setup creates the bridge collections and their indexes.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)
	for collection, indexes := range collectionIndexes {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}
		for _, idx := range indexes {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	log.Info().Msg("Collections and indexes created successfully")

	if err := client.Disconnect(ctx); err != nil {
		return err
	}
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	// CreateCollection fails if the collection already exists, which is
	// fine on repeated setup runs
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		var cmdErr mongo.CommandError
		// error code 48 is NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.HasErrorCode(48) {
			log.Debug().Msgf("Collection %s already exists", collectionName)
			return nil
		}
		return err
	}

	log.Debug().Msgf("Collection %s created", collectionName)
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel)
	return err
}
