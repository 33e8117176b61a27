// main.go
package main

import (
	"context"
	"fmt"
	"go-bookstore/controllers"
	"go-bookstore/middleware"
	"go-bookstore/routes"
	"go-bookstore/utils"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	productController := controllers.NewProductController(client)
	cartController := controllers.NewCartController(client)
	checkoutController := controllers.NewCheckoutController(client, emailService)
	orderController := controllers.NewOrderController(client)
	settingController := controllers.NewSettingController(client)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)

	// Register routes
	routes.RegisterRoutes(router, productController, cartController, checkoutController, orderController, settingController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
