package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// HierarchyRow maps one (pc, constituency, ward) to the three contacts
// responsible for it. Emails are stored lowercased and trimmed; they are
// the scope lookup keys.
type HierarchyRow struct {
	ID bson.ObjectID `json:"id" bson:"_id,omitempty"`

	SL         string `json:"sl"         bson:"sl,omitempty"`
	SLEmail    string `json:"slEmail"    bson:"sl_email,omitempty"`
	Zonal      string `json:"zonal"      bson:"zonal,omitempty"`
	ZonalEmail string `json:"zonalEmail" bson:"zonal_email,omitempty"`
	ACM        string `json:"acm"        bson:"acm,omitempty"`
	ACMEmail   string `json:"acmEmail"   bson:"acm_email,omitempty"`

	PC           string `json:"pc"           bson:"pc"`
	Constituency string `json:"constituency" bson:"constituency"`
	Ward         string `json:"ward"         bson:"ward"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at,omitempty"`
}
