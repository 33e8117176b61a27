package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment method and status values used by the checkout flow.
const (
	PaymentMethodCOD     = "cod"
	PaymentStatusPending = "pending"
)

// Customer is the shipping block captured at checkout. District drives
// the shipping charge ("dhaka", any case, means inside-Dhaka delivery).
type Customer struct {
	Name           string `bson:"name" json:"name"`
	Email          string `bson:"email" json:"email"`
	Number         string `bson:"number" json:"number"`
	Address        string `bson:"address" json:"address"`
	AreaOfDelivery string `bson:"areaOfDelivery" json:"areaOfDelivery"`
	District       string `bson:"district" json:"district"`
}

// OrderedProduct is a denormalized copy of a cart line at order time.
// It never references the live Product record.
type OrderedProduct struct {
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	Title      string             `bson:"title" json:"title"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Variations []Variation        `bson:"variations" json:"variations"`
	Images     string             `bson:"images" json:"images"`
	Category   string             `bson:"category" json:"category"`
	SKU        string             `bson:"sku" json:"sku"`
}

// Order is a terminal record: once created it is never mutated by this
// flow. TotalAmount is always Subtotal + Shipping.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer      Customer           `bson:"customer" json:"customer"`
	Products      []OrderedProduct   `bson:"products" json:"products"`
	Email         string             `bson:"email" json:"email"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Shipping      float64            `bson:"shipping" json:"shipping"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Note          string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
