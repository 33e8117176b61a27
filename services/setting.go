package services

import (
	"context"
	"errors"

	"go-bookstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettingService reads the store-wide settings document.
type SettingService struct {
	Collection *mongo.Collection
}

// NewSettingService creates a SettingService bound to the settings
// collection.
func NewSettingService(client *mongo.Client) *SettingService {
	return &SettingService{
		Collection: client.Database("bookstore").Collection("settings"),
	}
}

// Get returns the settings singleton. A store with no settings document
// yet degrades to zero-value settings (zero delivery charges) rather
// than failing the page.
func (ss *SettingService) Get(ctx context.Context) (models.Setting, error) {
	var setting models.Setting
	err := ss.Collection.FindOne(ctx, bson.M{}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Setting{}, nil
	}
	if err != nil {
		return models.Setting{}, &StoreError{Op: "find settings", Err: err}
	}
	return setting, nil
}
