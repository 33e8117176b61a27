package controllers

import (
	"context"
	"net/http"
	"time"

	"go-bookstore/services"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingController serves the store-wide configuration.
type SettingController struct {
	Service *services.SettingService
}

// NewSettingController creates a new SettingController
func NewSettingController(client *mongo.Client) *SettingController {
	return &SettingController{
		Service: services.NewSettingService(client),
	}
}

// GetSetting returns the store configuration consumed by the
// presentation layer (name, tagline, favicon, delivery charges).
func (sc *SettingController) GetSetting(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	setting, err := sc.Service.Get(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, setting)
}
