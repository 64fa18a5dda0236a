package model

import "go.mongodb.org/mongo-driver/v2/bson"

type User struct {
	ID           bson.ObjectID `json:"id"    bson:"_id,omitempty"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-"     bson:"password_hash"`
	Roles        []string      `json:"roles" bson:"roles,omitempty"`
}
