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

type BoothRepository struct {
	col *mongo.Collection
}

func NewBoothRepository(db *mongo.Database) *BoothRepository {
	return &BoothRepository{col: db.Collection("booth_results")}
}

func (r *BoothRepository) Insert(ctx context.Context, br model.BoothResult) (model.BoothResult, error) {
	br.PC = normalize.Key(br.PC)
	br.Constituency = normalize.Key(br.Constituency)
	br.Ward = normalize.Key(br.Ward)
	br.Booth = normalize.Key(br.Booth)
	br.CreatedAt = time.Now()
	br.UpdatedAt = br.CreatedAt

	res, err := r.col.InsertOne(ctx, br)
	if err != nil {
		return model.BoothResult{}, errors.Wrap(err, "booth result insert")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		br.ID = id
	}
	return br, nil
}

func (r *BoothRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.BoothResult, error) {
	var br model.BoothResult
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&br)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "booth result by id")
	}
	return &br, nil
}

func (r *BoothRepository) FindAll(ctx context.Context) ([]model.BoothResult, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *BoothRepository) FindByConstituency(ctx context.Context, constituency string) ([]model.BoothResult, error) {
	return r.find(ctx, bson.M{"constituency": normalize.Key(constituency)}, nil)
}

func (r *BoothRepository) FindByBooth(ctx context.Context, booth string) ([]model.BoothResult, error) {
	return r.find(ctx, bson.M{"booth": normalize.Key(booth)}, nil)
}

func (r *BoothRepository) FindByFilter(ctx context.Context, filter bson.M) ([]model.BoothResult, error) {
	return r.find(ctx, filter, nil)
}

// FindOneBySlot reports whether a booth already has an entry for a
// time slot.
func (r *BoothRepository) FindOneBySlot(ctx context.Context, booth, timeSlot string) (*model.BoothResult, error) {
	var br model.BoothResult
	err := r.col.FindOne(ctx, bson.M{
		"booth":     normalize.Key(booth),
		"time_slot": timeSlot,
	}).Decode(&br)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "booth entry lookup")
	}
	return &br, nil
}

func (r *BoothRepository) FindByBoothNewestSlotFirst(ctx context.Context, booth string) ([]model.BoothResult, error) {
	return r.find(
		ctx,
		bson.M{"booth": normalize.Key(booth)},
		options.Find().SetSort(bson.D{{Key: "time_slot", Value: -1}}),
	)
}

// SumField totals one numeric-string vote field over all results.
func (r *BoothRepository) SumField(ctx context.Context, field string) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$toInt": bson.M{"$ifNull": bson.A{nonEmpty("$" + field), 0}}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrapf(err, "sum %s", field)
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, errors.Wrapf(err, "sum %s decode", field)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// BoothTypeTotals is one group of the by-booth-type rollups.
type BoothTypeTotals struct {
	BoothType             string  `bson:"_id"                   json:"_id"`
	TotalVotes            int     `bson:"total_votes"           json:"totalVotes"`
	TotalPolledVotes      int     `bson:"total_polled_votes"    json:"totalPolledVotes"`
	TotalFavVotes         int     `bson:"total_fav_votes"       json:"totalFavVotes,omitempty"`
	TotalUbtVotes         int     `bson:"total_ubt_votes"       json:"totalUbtVotes,omitempty"`
	TotalOtherVotes       int     `bson:"total_other_votes"     json:"totalOtherVotes,omitempty"`
	PolledVotesPercentage float64 `bson:"polled_votes_pct"      json:"polledVotesPercentage"`
	FavVotesPercentage    float64 `bson:"fav_votes_pct"         json:"favVotesPercentage,omitempty"`
	UbtVotesPercentage    float64 `bson:"ubt_votes_pct"         json:"ubtVotesPercentage,omitempty"`
	OtherVotesPercentage  float64 `bson:"other_votes_pct"       json:"otherVotesPercentage,omitempty"`
}

// TotalsByBoothType groups vote sums per booth type with turnout
// percentage. withSplit adds fav/ubt/other sums and percentages.
func (r *BoothRepository) TotalsByBoothType(ctx context.Context, withSplit bool) ([]BoothTypeTotals, error) {
	group := bson.M{
		"_id":                "$booth_type",
		"total_votes":        sumToInt("$total_votes"),
		"total_polled_votes": sumToInt("$polled_votes"),
	}
	fields := bson.M{
		"polled_votes_pct": pct("$total_polled_votes", "$total_votes"),
	}
	if withSplit {
		group["total_fav_votes"] = sumToInt("$fav_votes")
		group["total_ubt_votes"] = sumToInt("$ubt_votes")
		group["total_other_votes"] = sumToInt("$other_votes")
		fields["fav_votes_pct"] = pct("$total_fav_votes", "$total_polled_votes")
		fields["ubt_votes_pct"] = pct("$total_ubt_votes", "$total_polled_votes")
		fields["other_votes_pct"] = pct("$total_other_votes", "$total_polled_votes")
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: group}},
		{{Key: "$addFields", Value: fields}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "totals by booth type")
	}
	defer cur.Close(ctx)

	var out []BoothTypeTotals
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "totals by booth type decode")
	}
	return out, nil
}

// ConstituencyRollup aggregates vote sums per constituency.
type ConstituencyRollup struct {
	Constituency string   `bson:"_id"          json:"constituency"`
	PCs          []string `bson:"pcs"          json:"pcs"`
	TotalVotes   float64  `bson:"total_votes"  json:"totalVotes"`
	PolledVotes  float64  `bson:"polled_votes" json:"polledVotes"`
	FavVotes     float64  `bson:"fav_votes"    json:"favVotes"`
	UbtVotes     float64  `bson:"ubt_votes"    json:"ubtVotes"`
	OtherVotes   float64  `bson:"other_votes"  json:"otherVotes"`
}

func (r *BoothRepository) AllConstituencyRollups(ctx context.Context) ([]ConstituencyRollup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"total_votes_n":  toDouble("$total_votes"),
			"polled_votes_n": toDouble("$polled_votes"),
			"fav_votes_n":    toDouble("$fav_votes"),
			"ubt_votes_n":    toDouble("$ubt_votes"),
			"other_votes_n":  toDouble("$other_votes"),
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$constituency",
			"pcs":          bson.M{"$addToSet": "$pc"},
			"total_votes":  bson.M{"$sum": "$total_votes_n"},
			"polled_votes": bson.M{"$sum": "$polled_votes_n"},
			"fav_votes":    bson.M{"$sum": "$fav_votes_n"},
			"ubt_votes":    bson.M{"$sum": "$ubt_votes_n"},
			"other_votes":  bson.M{"$sum": "$other_votes_n"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "constituency rollups")
	}
	defer cur.Close(ctx)

	var out []ConstituencyRollup
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "constituency rollups decode")
	}
	return out, nil
}

func (r *BoothRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "booth result delete")
	}
	return res.DeletedCount > 0, nil
}

func (r *BoothRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]model.BoothResult, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "booth result find")
	}
	defer cur.Close(ctx)

	var out []model.BoothResult
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "booth result decode")
	}
	return out, nil
}

// Field-app numbers arrive as strings and are sometimes blank; blanks
// count as zero.
func nonEmpty(field string) bson.M {
	return bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{field, ""}}, "0", field}}
}

func sumToInt(field string) bson.M {
	return bson.M{"$sum": bson.M{"$toInt": bson.M{"$ifNull": bson.A{nonEmpty(field), 0}}}}
}

func toDouble(field string) bson.M {
	return bson.M{"$toDouble": bson.M{"$ifNull": bson.A{nonEmpty(field), 0}}}
}

func pct(part, whole string) bson.M {
	return bson.M{"$cond": bson.M{
		"if":   bson.M{"$eq": bson.A{whole, 0}},
		"then": 0,
		"else": bson.M{"$multiply": bson.A{bson.M{"$divide": bson.A{part, whole}}, 100}},
	}}
}
