package bootstrap

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureIndexes creates the indexes the query paths rely on. Safe to
// run on every startup; Mongo treats existing identical indexes as a
// no-op.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The three email columns are the scope lookup keys; the compound
	// geography indexes back the distinct listings.
	hierarchy := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sl_email", Value: 1}}},
		{Keys: bson.D{{Key: "zonal_email", Value: 1}}},
		{Keys: bson.D{{Key: "acm_email", Value: 1}}},
		{Keys: bson.D{{Key: "constituency", Value: 1}, {Key: "ward", Value: 1}}},
		{Keys: bson.D{{Key: "pc", Value: 1}, {Key: "constituency", Value: 1}, {Key: "ward", Value: 1}}},
	}
	if _, err := db.Collection("hierarchy_mappings").Indexes().CreateMany(ctx, hierarchy); err != nil {
		return errors.Wrap(err, "hierarchy indexes")
	}

	booths := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booth", Value: 1}, {Key: "time_slot", Value: 1}}},
		{Keys: bson.D{{Key: "constituency", Value: 1}}},
		{Keys: bson.D{{Key: "pc", Value: 1}, {Key: "constituency", Value: 1}, {Key: "ward", Value: 1}}},
	}
	if _, err := db.Collection("booth_results").Indexes().CreateMany(ctx, booths); err != nil {
		return errors.Wrap(err, "booth result indexes")
	}

	interventions := []mongo.IndexModel{
		{Keys: bson.D{{Key: "constituency", Value: 1}}},
		{Keys: bson.D{{Key: "pc", Value: 1}, {Key: "constituency", Value: 1}, {Key: "ward", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection("interventions").Indexes().CreateMany(ctx, interventions); err != nil {
		return errors.Wrap(err, "intervention indexes")
	}

	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, users); err != nil {
		return errors.Wrap(err, "user indexes")
	}

	return nil
}
