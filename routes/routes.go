package routes

import (
	"go-bookstore/controllers"
	"go-bookstore/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController, orderController *controllers.OrderController, settingController *controllers.SettingController) {
	// Public storefront routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/search", productController.SearchProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/settings", settingController.GetSetting).Methods("GET")

	// Customer routes (signed-in)
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/checkout", checkoutController.GetCheckout).Methods("GET")
	protected.HandleFunc("/checkout", checkoutController.PlaceOrder).Methods("POST")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/{id}/decrease-stock", productController.DecreaseStock).Methods("POST")
}
