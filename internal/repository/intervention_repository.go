package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"boothtrack/internal/normalize"
	"boothtrack/model"
)

type InterventionRepository struct {
	col *mongo.Collection
}

func NewInterventionRepository(db *mongo.Database) *InterventionRepository {
	return &InterventionRepository{col: db.Collection("interventions")}
}

func (r *InterventionRepository) Insert(ctx context.Context, iv model.Intervention) (model.Intervention, error) {
	iv.PC = normalize.Key(iv.PC)
	iv.Constituency = normalize.Key(iv.Constituency)
	iv.Ward = normalize.Key(iv.Ward)
	iv.Booth = normalize.Key(iv.Booth)
	if iv.InterventionAction == "" {
		iv.InterventionAction = model.InterventionActionNotSolved
	}
	iv.CreatedAt = time.Now()
	iv.UpdatedAt = iv.CreatedAt

	res, err := r.col.InsertOne(ctx, iv)
	if err != nil {
		return model.Intervention{}, errors.Wrap(err, "intervention insert")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		iv.ID = id
	}
	return iv, nil
}

// UpdateAction sets interventionAction on one record. Returns nil when
// no record has that id.
func (r *InterventionRepository) UpdateAction(ctx context.Context, id bson.ObjectID, action string) (*model.Intervention, error) {
	var updated model.Intervention
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"intervention_action": action, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "intervention update action")
	}
	return &updated, nil
}

// Find returns matching interventions, newest first.
func (r *InterventionRepository) Find(ctx context.Context, filter bson.M) ([]model.Intervention, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "intervention find")
	}
	defer cur.Close(ctx)

	var out []model.Intervention
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "intervention decode")
	}
	return out, nil
}

// RawCounts groups matching interventions by type and by action in one
// $facet pass. Zero-filling of the known keys happens in services.
func (r *InterventionRepository) RawCounts(ctx context.Context, filter bson.M) (total int, byType, byAction map[string]int, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$facet", Value: bson.M{
			"total": bson.A{bson.M{"$count": "count"}},
			"byType": bson.A{
				bson.M{"$group": bson.M{"_id": "$intervention_type", "count": bson.M{"$sum": 1}}},
			},
			"byAction": bson.A{
				bson.M{"$group": bson.M{"_id": "$intervention_action", "count": bson.M{"$sum": 1}}},
			},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "intervention counts")
	}
	defer cur.Close(ctx)

	var facets []struct {
		Total []struct {
			Count int `bson:"count"`
		} `bson:"total"`
		ByType []struct {
			ID    string `bson:"_id"`
			Count int    `bson:"count"`
		} `bson:"byType"`
		ByAction []struct {
			ID    string `bson:"_id"`
			Count int    `bson:"count"`
		} `bson:"byAction"`
	}
	if err := cur.All(ctx, &facets); err != nil {
		return 0, nil, nil, errors.Wrap(err, "intervention counts decode")
	}

	byType = map[string]int{}
	byAction = map[string]int{}
	if len(facets) == 0 {
		return 0, byType, byAction, nil
	}
	f := facets[0]
	if len(f.Total) > 0 {
		total = f.Total[0].Count
	}
	for _, g := range f.ByType {
		byType[g.ID] = g.Count
	}
	for _, g := range f.ByAction {
		byAction[g.ID] = g.Count
	}
	return total, byType, byAction, nil
}

func (r *InterventionRepository) FindByConstituency(ctx context.Context, constituency string) ([]model.Intervention, error) {
	return r.Find(ctx, bson.M{"constituency": normalize.Key(constituency)})
}
