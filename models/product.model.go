package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a book in the catalog. Price and Stock are kept as
// strings in the store; callers coerce them to numbers where needed.
// Stock never goes below zero.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       string             `bson:"price" json:"price"`
	Stock       string             `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	SubCategory []string           `bson:"subCategory" json:"subCategory"`
	Brand       string             `bson:"brand" json:"brand"`
	SKU         string             `bson:"sku" json:"sku"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
