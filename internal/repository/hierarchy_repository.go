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

// HierarchyRepository reads the hierarchy directory. It satisfies
// scope.Directory and backs the scoped geography listings.
type HierarchyRepository struct {
	col *mongo.Collection
}

func NewHierarchyRepository(db *mongo.Database) *HierarchyRepository {
	return &HierarchyRepository{col: db.Collection("hierarchy_mappings")}
}

// FindRowsByAnyEmail returns every row where email appears at any of
// the three levels. The email is assumed already normalized.
func (r *HierarchyRepository) FindRowsByAnyEmail(ctx context.Context, email string) ([]model.HierarchyRow, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"sl_email": email},
			bson.M{"zonal_email": email},
			bson.M{"acm_email": email},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "hierarchy lookup")
	}
	defer cur.Close(ctx)

	var rows []model.HierarchyRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "hierarchy decode")
	}
	return rows, nil
}

func (r *HierarchyRepository) DistinctPCs(ctx context.Context, filter bson.M) ([]string, error) {
	return r.distinct(ctx, "pc", filter)
}

func (r *HierarchyRepository) DistinctConstituencies(ctx context.Context, filter bson.M) ([]string, error) {
	return r.distinct(ctx, "constituency", filter)
}

func (r *HierarchyRepository) DistinctWards(ctx context.Context, filter bson.M) ([]string, error) {
	return r.distinct(ctx, "ward", filter)
}

// InsertRow is used by the hierarchy-administration tooling; emails and
// geography keys are folded here so the directory never stores an
// unnormalized key.
func (r *HierarchyRepository) InsertRow(ctx context.Context, row model.HierarchyRow) (bson.ObjectID, error) {
	row.SLEmail = normalize.Email(row.SLEmail)
	row.ZonalEmail = normalize.Email(row.ZonalEmail)
	row.ACMEmail = normalize.Email(row.ACMEmail)
	row.PC = normalize.Key(row.PC)
	row.Constituency = normalize.Key(row.Constituency)
	row.Ward = normalize.Key(row.Ward)
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt

	res, err := r.col.InsertOne(ctx, row)
	if err != nil {
		return bson.ObjectID{}, errors.Wrap(err, "hierarchy insert")
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (r *HierarchyRepository) distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var values []string
	if err := r.col.Distinct(ctx, field, filter).Decode(&values); err != nil {
		return nil, errors.Wrapf(err, "hierarchy distinct %s", field)
	}
	return values, nil
}
