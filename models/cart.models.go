package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variation is a single selected product option, e.g. {Format, Hardcover}.
type Variation struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

// CartItem is one line of a customer's cart. The cart is keyed by the
// customer's email; product display fields are snapshotted at add time
// and are not kept in sync with later product edits.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	Title      string             `bson:"title" json:"title"`
	Images     string             `bson:"images" json:"images"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Category   string             `bson:"category" json:"category"`
	Brand      string             `bson:"brand" json:"brand"`
	SKU        string             `bson:"sku" json:"sku"`
	Variations []Variation        `bson:"variations,omitempty" json:"variations,omitempty"`
}
