package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go-bookstore/models"
)

// Checkout session states.
const (
	StateLoading    = "loading"
	StateReady      = "ready"
	StateSubmitting = "submitting"
	StateCompleted  = "completed"
	StateFailed     = "failed"
)

// CartStore is the cart boundary the checkout flow depends on.
type CartStore interface {
	GetByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// OrderStore is the order-creation boundary.
type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
}

// SettingStore exposes the store configuration.
type SettingStore interface {
	Get(ctx context.Context) (models.Setting, error)
}

// ShippingCharge selects the delivery charge for a district. Any
// casing of "dhaka" gets the inside-Dhaka rate.
func ShippingCharge(district string, setting models.Setting) float64 {
	if strings.EqualFold(strings.TrimSpace(district), "dhaka") {
		return setting.DeliveryCharge.InsideDhaka
	}
	return setting.DeliveryCharge.OutSideDhaka
}

// CheckoutSession drives a single checkout: load settings and cart,
// take customer edits, then assemble and submit the order. Subtotal and
// total are always derived from the current cart and shipping charge,
// never stored.
type CheckoutSession struct {
	carts    CartStore
	orders   OrderStore
	settings SettingStore

	state    string
	email    string
	customer models.Customer
	note     string
	items    []models.CartItem
	setting  models.Setting
	shipping float64
}

// NewCheckoutSession starts a session for the signed-in customer's
// email. The email keys both the cart load and the final cart clear.
func NewCheckoutSession(carts CartStore, orders OrderStore, settings SettingStore, email string) *CheckoutSession {
	return &CheckoutSession{
		carts:    carts,
		orders:   orders,
		settings: settings,
		state:    StateLoading,
		email:    email,
		customer: models.Customer{Email: email},
	}
}

// Load fetches the settings and the cart concurrently and moves the
// session to ready. An already-empty cart short-circuits the session to
// completed: there is nothing to order.
func (s *CheckoutSession) Load(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		setting    models.Setting
		items      []models.CartItem
		settingErr error
		cartErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		setting, settingErr = s.settings.Get(ctx)
	}()
	go func() {
		defer wg.Done()
		items, cartErr = s.carts.GetByEmail(ctx, s.email)
	}()
	wg.Wait()

	if settingErr != nil {
		return settingErr
	}
	if cartErr != nil {
		return cartErr
	}

	s.setting = setting
	s.items = items
	s.shipping = ShippingCharge(s.customer.District, setting)
	if len(items) == 0 {
		s.state = StateCompleted
		return nil
	}
	s.state = StateReady
	return nil
}

// SetCustomer replaces the customer fields. A district change
// recomputes the shipping charge immediately.
func (s *CheckoutSession) SetCustomer(c models.Customer) {
	s.customer = c
	s.shipping = ShippingCharge(c.District, s.setting)
}

// SetNote attaches an optional order note.
func (s *CheckoutSession) SetNote(note string) {
	s.note = note
}

// State reports the session state.
func (s *CheckoutSession) State() string {
	return s.state
}

// Items returns the loaded cart lines.
func (s *CheckoutSession) Items() []models.CartItem {
	return s.items
}

// Setting returns the loaded store configuration.
func (s *CheckoutSession) Setting() models.Setting {
	return s.setting
}

// Subtotal is the sum of price times quantity over the cart.
func (s *CheckoutSession) Subtotal() float64 {
	var sum float64
	for _, item := range s.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Shipping is the charge selected by the customer's district.
func (s *CheckoutSession) Shipping() float64 {
	return s.shipping
}

// Total is always subtotal plus shipping.
func (s *CheckoutSession) Total() float64 {
	return s.Subtotal() + s.shipping
}

// Submit validates the customer input, assembles the denormalized order
// payload and creates the order. The cart is cleared only after the
// order creation succeeds; a failed creation leaves the cart intact and
// the session actionable. Returns the created order.
func (s *CheckoutSession) Submit(ctx context.Context) (models.Order, error) {
	if s.state != StateReady && s.state != StateFailed {
		return models.Order{}, &ValidationError{Message: fmt.Sprintf("cannot submit from state %q", s.state)}
	}
	c := s.customer
	if c.Name == "" || c.Email == "" || c.Number == "" || c.Address == "" {
		return models.Order{}, &ValidationError{Message: "please fill in all customer details"}
	}
	if len(s.items) == 0 {
		return models.Order{}, &ValidationError{Message: "your cart is empty"}
	}

	s.state = StateSubmitting
	payload := models.Order{
		Customer:      c,
		Products:      orderedProducts(s.items),
		Email:         c.Email,
		Subtotal:      s.Subtotal(),
		Shipping:      s.shipping,
		TotalAmount:   s.Total(),
		PaymentMethod: models.PaymentMethodCOD,
		PaymentStatus: models.PaymentStatusPending,
		TransactionID: newTransactionID(),
		Note:          s.note,
	}

	order, err := s.orders.Create(ctx, payload)
	if err != nil {
		s.state = StateFailed
		return models.Order{}, err
	}

	// Strictly after order-creation success.
	if err := s.carts.DeleteByEmail(ctx, s.email); err != nil {
		log.Printf("checkout: clearing cart for %s failed: %v", s.email, err)
	}
	s.items = nil
	s.state = StateCompleted
	return order, nil
}

// orderedProducts snapshots cart lines into terminal order lines.
func orderedProducts(items []models.CartItem) []models.OrderedProduct {
	products := make([]models.OrderedProduct, 0, len(items))
	for _, item := range items {
		variations := item.Variations
		if variations == nil {
			variations = []models.Variation{}
		}
		products = append(products, models.OrderedProduct{
			ProductID:  item.ProductID,
			Title:      item.Title,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Variations: variations,
			Images:     item.Images,
			Category:   item.Category,
			SKU:        item.SKU,
		})
	}
	return products
}

func newTransactionID() string {
	return fmt.Sprintf("COD_%d", time.Now().UnixMilli())
}
