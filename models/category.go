package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is seed data; the API surface only reads it.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Image    string             `bson:"img,omitempty" json:"img,omitempty"`
}

// CategoryName is the projected shape returned by the brand category
// listing: the name field plus the id the projection always carries.
type CategoryName struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
}
