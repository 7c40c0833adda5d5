package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a seller-supplied listing. Category holds the id of the
// productCategory document it belongs to; nothing enforces that the
// reference resolves.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	Image         string             `bson:"img,omitempty" json:"img,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	ResalePrice   string             `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	OriginalPrice string             `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	YearsOfUse    string             `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	PostedAt      string             `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerEmail   string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
