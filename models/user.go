package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a self-registered account. Role is one of the constants in the
// constants package; Status becomes "verified" after an admin promotes
// the account.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Role   string             `bson:"role,omitempty" json:"role,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}
