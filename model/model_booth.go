package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BoothResult is one vote-count report for a booth at a time slot.
// Vote fields arrive as strings from the field app and are kept that
// way; aggregation pipelines convert with $toInt/$toDouble.
type BoothResult struct {
	ID     bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	UserID bson.ObjectID `json:"userId" bson:"user_id,omitempty"`

	PC           string `json:"pc"           bson:"pc"`
	Constituency string `json:"constituency" bson:"constituency"`
	Ward         string `json:"ward"         bson:"ward,omitempty"`
	Booth        string `json:"booth"        bson:"booth"`
	BoothType    string `json:"boothType"    bson:"booth_type,omitempty"`

	TimeSlot    string `json:"timeSlot"    bson:"time_slot"` // e.g. "9:30AM"
	TotalVotes  string `json:"totalVotes"  bson:"total_votes,omitempty"`
	PolledVotes string `json:"polledVotes" bson:"polled_votes,omitempty"`
	FavVotes    string `json:"favVotes"    bson:"fav_votes,omitempty"`
	UbtVotes    string `json:"ubtVotes"    bson:"ubt_votes,omitempty"`
	OtherVotes  string `json:"otherVotes"  bson:"other_votes,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at,omitempty"`
}
