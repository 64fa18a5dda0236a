package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BoothAssignment is the booth roster: which booths exist under which
// geography, independent of whether any result was reported yet.
type BoothAssignment struct {
	ID     bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	UserID bson.ObjectID `json:"userId" bson:"user_id,omitempty"`

	PC           string `json:"pc"           bson:"pc"`
	Constituency string `json:"constituency" bson:"constituency"`
	Ward         string `json:"ward"         bson:"ward"`
	Booth        string `json:"booth"        bson:"booth,omitempty"`
	Priority     string `json:"priority"     bson:"priority,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at,omitempty"`
}
