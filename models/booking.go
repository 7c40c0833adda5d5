package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking records a purchase intent. Email is the owning identity; reads
// are restricted to the caller whose token carries the same email.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BuyerName       string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProductID       string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price           string             `bson:"price,omitempty" json:"price,omitempty"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
}
