package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go-bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderService owns the orders collection. Orders are terminal records;
// this service only creates and reads them.
type OrderService struct {
	Collection *mongo.Collection
	Products   *ProductService
}

// NewOrderService creates an OrderService bound to the orders
// collection.
func NewOrderService(client *mongo.Client, products *ProductService) *OrderService {
	return &OrderService{
		Collection: client.Database("bookstore").Collection("orders"),
		Products:   products,
	}
}

// Create validates and persists an order, then decrements stock for
// each ordered line. A stock decrement that fails does not undo the
// order: the order record is the source of truth, and stock floors at
// zero anyway.
func (os *OrderService) Create(ctx context.Context, order models.Order) (models.Order, error) {
	if err := validateOrder(order); err != nil {
		return models.Order{}, err
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	result, err := os.Collection.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, &StoreError{Op: "insert order", Err: err}
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}

	for _, line := range order.Products {
		if _, err := os.Products.DecreaseStock(ctx, line.ProductID, line.Quantity); err != nil {
			log.Printf("order %s: stock decrement for product %s failed: %v",
				order.ID.Hex(), line.ProductID.Hex(), err)
		}
	}
	return order, nil
}

// GetByID returns the order backing a confirmation view.
func (os *OrderService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := os.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{Entity: "order", ID: id.Hex()}
	}
	if err != nil {
		return nil, &StoreError{Op: "find order", Err: err}
	}
	return &order, nil
}

func validateOrder(order models.Order) error {
	c := order.Customer
	if c.Name == "" || c.Email == "" || c.Number == "" || c.Address == "" {
		return &ValidationError{Message: "customer name, email, number and address are required"}
	}
	if len(order.Products) == 0 {
		return &ValidationError{Message: "order must contain at least one product"}
	}
	return nil
}
