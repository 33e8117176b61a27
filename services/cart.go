package services

import (
	"context"
	"errors"

	"go-bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartService owns the carts collection. Each document is one cart
// line, keyed by the owner's email.
type CartService struct {
	Collection *mongo.Collection
}

// NewCartService creates a CartService bound to the carts collection.
func NewCartService(client *mongo.Client) *CartService {
	return &CartService{
		Collection: client.Database("bookstore").Collection("carts"),
	}
}

// Add puts an item into the owner's cart. When a line for the same
// product with the same variations already exists, the quantities are
// merged instead of adding a duplicate line.
func (cs *CartService) Add(ctx context.Context, item models.CartItem) error {
	if item.Email == "" {
		return &ValidationError{Message: "cart item requires an owner email"}
	}
	if item.Quantity < 1 {
		return &ValidationError{Message: "cart item quantity must be at least 1"}
	}

	// A line for the same product with the same variations merges
	// quantities instead of duplicating.
	var existing models.CartItem
	err := cs.Collection.FindOne(ctx, bson.M{
		"email":      item.Email,
		"productId":  item.ProductID,
		"variations": item.Variations,
	}).Decode(&existing)
	if err == nil {
		_, err = cs.Collection.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$inc": bson.M{"quantity": item.Quantity}},
		)
		if err != nil {
			return &StoreError{Op: "update cart item", Err: err}
		}
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return &StoreError{Op: "find cart item", Err: err}
	}

	if _, err := cs.Collection.InsertOne(ctx, item); err != nil {
		return &StoreError{Op: "insert cart item", Err: err}
	}
	return nil
}

// GetByEmail returns every cart line owned by the email.
func (cs *CartService) GetByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := cs.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, &StoreError{Op: "find cart", Err: err}
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &StoreError{Op: "decode cart", Err: err}
	}
	return items, nil
}

// RemoveItem deletes a single cart line. The email guard keeps one
// customer from removing another's line.
func (cs *CartService) RemoveItem(ctx context.Context, email string, id primitive.ObjectID) error {
	result, err := cs.Collection.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return &StoreError{Op: "delete cart item", Err: err}
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{Entity: "cart item", ID: id.Hex()}
	}
	return nil
}

// DeleteByEmail clears the whole cart for an email.
func (cs *CartService) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := cs.Collection.DeleteMany(ctx, bson.M{"email": email}); err != nil {
		return &StoreError{Op: "delete cart", Err: err}
	}
	return nil
}
