package controllers

import (
	"context"
	"net/http"
	"time"

	"go-bookstore/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderController serves order confirmation views.
type OrderController struct {
	Service *services.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client) *OrderController {
	products := services.NewProductService(client)
	return &OrderController{
		Service: services.NewOrderService(client, products),
	}
}

// GetOrderByID returns an order to its owner (or an admin).
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := oc.Service.GetByID(ctx, id)
	if err != nil {
		respondError(w, err)
		return
	}

	if order.Email != claims.Email && claims.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
