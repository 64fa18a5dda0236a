package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"boothtrack/internal/normalize"
	"boothtrack/model"
)

// AssignmentRepository reads and writes the booth roster.
type AssignmentRepository struct {
	col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{col: db.Collection("booth_assignments")}
}

func (r *AssignmentRepository) Insert(ctx context.Context, a model.BoothAssignment) (model.BoothAssignment, error) {
	a.PC = normalize.Key(a.PC)
	a.Constituency = normalize.Key(a.Constituency)
	a.Ward = normalize.Key(a.Ward)
	a.Booth = normalize.Key(a.Booth)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return model.BoothAssignment{}, errors.Wrap(err, "assignment insert")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		a.ID = id
	}
	return a, nil
}

func (r *AssignmentRepository) FindAll(ctx context.Context) ([]model.BoothAssignment, error) {
	return r.find(ctx, bson.M{})
}

func (r *AssignmentRepository) FindByConstituency(ctx context.Context, constituency string) ([]model.BoothAssignment, error) {
	return r.find(ctx, bson.M{"constituency": normalize.Key(constituency)})
}

func (r *AssignmentRepository) DistinctPCs(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "pc", bson.M{})
}

func (r *AssignmentRepository) DistinctConstituenciesByPC(ctx context.Context, pc string) ([]string, error) {
	return r.distinct(ctx, "constituency", bson.M{"pc": normalize.Key(pc)})
}

func (r *AssignmentRepository) DistinctWards(ctx context.Context, pc, constituency string) ([]string, error) {
	return r.distinct(ctx, "ward", bson.M{
		"pc":           normalize.Key(pc),
		"constituency": normalize.Key(constituency),
	})
}

func (r *AssignmentRepository) DistinctAllWards(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "ward", bson.M{})
}

func (r *AssignmentRepository) find(ctx context.Context, filter bson.M) ([]model.BoothAssignment, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "assignment find")
	}
	defer cur.Close(ctx)

	var out []model.BoothAssignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "assignment decode")
	}
	return out, nil
}

func (r *AssignmentRepository) distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	var values []string
	if err := r.col.Distinct(ctx, field, filter).Decode(&values); err != nil {
		return nil, errors.Wrapf(err, "assignment distinct %s", field)
	}
	return values, nil
}
