package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchResultCap = 10

// stockRetries bounds the optimistic retry loop in DecreaseStock.
const stockRetries = 3

// ProductService owns the products collection.
type ProductService struct {
	Collection *mongo.Collection
}

// NewProductService creates a ProductService bound to the products
// collection.
func NewProductService(client *mongo.Client) *ProductService {
	return &ProductService{
		Collection: client.Database("bookstore").Collection("products"),
	}
}

// Create persists a new product and returns the stored snapshot.
func (ps *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	result, err := ps.Collection.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, &StoreError{Op: "insert product", Err: err}
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return product, nil
}

// GetByID returns the product, or nil without error when the id does
// not exist. Only infrastructure failures produce an error.
func (ps *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := ps.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "find product", Err: err}
	}
	return &product, nil
}

// Update applies a partial field update and returns the post-update
// snapshot. The id and creation timestamp cannot be rewritten.
func (ps *ProductService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Product, error) {
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "createdAt")
	if len(fields) == 0 {
		return models.Product{}, &ValidationError{Message: "no fields to update"}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err := ps.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, &NotFoundError{Entity: "product", ID: id.Hex()}
	}
	if err != nil {
		return models.Product{}, &StoreError{Op: "update product", Err: err}
	}
	return updated, nil
}

// Delete removes the product record.
func (ps *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := ps.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &StoreError{Op: "delete product", Err: err}
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{Entity: "product", ID: id.Hex()}
	}
	return nil
}

// DecreaseStock subtracts an ordered quantity from a product's stock,
// clamping at zero. The write is guarded by a compare-and-swap on the
// prior stock value so two concurrent orders cannot both consume the
// last unit.
func (ps *ProductService) DecreaseStock(ctx context.Context, id primitive.ObjectID, orderedQuantity int) (models.Product, error) {
	for attempt := 0; attempt < stockRetries; attempt++ {
		product, err := ps.GetByID(ctx, id)
		if err != nil {
			return models.Product{}, err
		}
		if product == nil {
			return models.Product{}, &NotFoundError{Entity: "product", ID: id.Hex()}
		}

		next, err := nextStock(product.Stock, orderedQuantity)
		if err != nil {
			return models.Product{}, err
		}

		result, err := ps.Collection.UpdateOne(ctx,
			bson.M{"_id": id, "stock": product.Stock},
			bson.M{"$set": bson.M{"stock": next}},
		)
		if err != nil {
			return models.Product{}, &StoreError{Op: "update stock", Err: err}
		}
		if result.MatchedCount == 1 {
			product.Stock = next
			return *product, nil
		}
		// Lost the race; re-read and try again.
	}
	return models.Product{}, &StoreError{Op: "update stock", Err: fmt.Errorf("contention on product %s", id.Hex())}
}

// nextStock computes the clamped stock value after an order. Stock that
// is unparseable or already exhausted cannot be decremented.
func nextStock(current string, orderedQuantity int) (string, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(current))
	if err != nil {
		return "", &InvalidStateError{Reason: fmt.Sprintf("invalid stock value %q", current)}
	}
	if stock <= 0 {
		return "", &InvalidStateError{Reason: "out of stock"}
	}
	remaining := stock - orderedQuantity
	if remaining < 0 {
		remaining = 0
	}
	return strconv.Itoa(remaining), nil
}

// Query fetches the product snapshot and runs the filter pipeline over
// it. Store failures propagate; an empty page is a valid result.
func (ps *ProductService) Query(ctx context.Context, criteria FilterCriteria) (ProductPage, error) {
	products, err := ps.getAll(ctx)
	if err != nil {
		return ProductPage{}, err
	}
	return FilterProducts(products, criteria), nil
}

// SearchByTitle returns up to ten products whose title contains the
// query, case-insensitive. An empty query returns nothing.
func (ps *ProductService) SearchByTitle(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Product{}, nil
	}
	products, err := ps.getAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByTitle(products, query), nil
}

func filterByTitle(products []models.Product, query string) []models.Product {
	q := strings.ToLower(query)
	matched := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
			if len(matched) == searchResultCap {
				break
			}
		}
	}
	return matched
}

// getAll reads the full collection, newest first.
func (ps *ProductService) getAll(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ps.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &StoreError{Op: "find products", Err: err}
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, &StoreError{Op: "decode products", Err: err}
	}
	return products, nil
}
