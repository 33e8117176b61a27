package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-bookstore/models"
	"go-bookstore/services"
	"go-bookstore/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// CheckoutController drives the cart-to-order flow.
type CheckoutController struct {
	Carts        *services.CartService
	Orders       *services.OrderService
	Settings     *services.SettingService
	EmailService *utils.EmailService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(client *mongo.Client, emailService *utils.EmailService) *CheckoutController {
	products := services.NewProductService(client)
	return &CheckoutController{
		Carts:        services.NewCartService(client),
		Orders:       services.NewOrderService(client, products),
		Settings:     services.NewSettingService(client),
		EmailService: emailService,
	}
}

type checkoutRequest struct {
	Customer models.Customer `json:"customer"`
	Note     string          `json:"note"`
}

// GetCheckout loads the checkout view: cart lines, charges and derived
// totals for the signed-in customer.
func (cc *CheckoutController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := services.NewCheckoutSession(cc.Carts, cc.Orders, cc.Settings, claims.Email)
	if err := session.Load(ctx); err != nil {
		respondError(w, err)
		return
	}

	if session.State() == services.StateCompleted {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"state":    session.State(),
			"redirect": "/products",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"state":    session.State(),
		"items":    session.Items(),
		"setting":  session.Setting(),
		"subtotal": session.Subtotal(),
		"shipping": session.Shipping(),
		"total":    session.Total(),
	})
}

// PlaceOrder validates the customer details, assembles the order from
// the cart and submits it. The cart is cleared only on success.
func (cc *CheckoutController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	session := services.NewCheckoutSession(cc.Carts, cc.Orders, cc.Settings, claims.Email)
	if err := session.Load(ctx); err != nil {
		respondError(w, err)
		return
	}
	if session.State() == services.StateCompleted {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"state":    session.State(),
			"redirect": "/products",
		})
		return
	}

	session.SetCustomer(req.Customer)
	session.SetNote(req.Note)

	order, err := session.Submit(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	go func(email string, order models.Order) {
		if err := cc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
			log.Printf("Failed to send email to %s: %v", email, err)
		}
	}(order.Email, order)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"state":         session.State(),
		"orderId":       order.ID.Hex(),
		"transactionId": order.TransactionID,
		"subtotal":      order.Subtotal,
		"shipping":      order.Shipping,
		"totalAmount":   order.TotalAmount,
		"redirect":      "/orders/" + order.ID.Hex(),
	})
}
