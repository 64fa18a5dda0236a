package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Known interventionType / interventionAction values. Free text is
// accepted on write; the counts endpoint zero-fills exactly these.
const (
	InterventionTypeAdministrative = "Administrative"
	InterventionTypePolitical      = "Political"
	InterventionTypePolice         = "Police"

	InterventionActionSolved      = "Solved"
	InterventionActionNotSolved   = "Not Solved"
	InterventionActionActionTaken = "Action Taken"
)

type Intervention struct {
	ID     bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	UserID bson.ObjectID `json:"userId" bson:"user_id,omitempty"`

	PC           string `json:"pc"           bson:"pc,omitempty"`
	Constituency string `json:"constituency" bson:"constituency"`
	Ward         string `json:"ward"         bson:"ward,omitempty"`
	Booth        string `json:"booth"        bson:"booth,omitempty"`

	InterventionType            string `json:"interventionType"            bson:"intervention_type"`
	InterventionIssues          string `json:"interventionIssues"          bson:"intervention_issues,omitempty"`
	InterventionIssueBrief      string `json:"interventionIssueBrief"      bson:"intervention_issue_brief,omitempty"`
	InterventionContactFollowUp string `json:"interventionContactFollowUp" bson:"intervention_contact_follow_up,omitempty"`
	InterventionAction          string `json:"interventionAction"          bson:"intervention_action,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at,omitempty"`
}
