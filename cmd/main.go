package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/auth"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/db"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/handlers"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	// Connect to MongoDB
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI environment variable not set")
	}
	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	sportsDB := client.Database("sportsDB")

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET environment variable not set")
	}
	tokens := auth.NewTokenService(secret)

	// Initialize services and handlers
	userService := services.NewUserService(sportsDB)
	classService := services.NewClassService(sportsDB)
	cartService := services.NewCartService(sportsDB)
	paymentService := services.NewPaymentService(sportsDB)
	stripeService := services.NewStripeService()

	authHandler := handlers.NewAuthHandler(tokens)
	userHandler := handlers.NewUserHandler(userService)
	classHandler := handlers.NewClassHandler(classService)
	cartHandler := handlers.NewCartHandler(cartService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, stripeService)

	// Gate chains: role gates always run behind the token gate.
	adminOnly := auth.RequireRole(userService, models.RoleAdmin)
	instructorOnly := auth.RequireRole(userService, models.RoleInstructor)
	authed := func(h http.HandlerFunc) http.Handler {
		return tokens.RequireAuth(h)
	}
	asAdmin := func(h http.HandlerFunc) http.Handler {
		return tokens.RequireAuth(adminOnly(h))
	}
	asInstructor := func(h http.HandlerFunc) http.Handler {
		return tokens.RequireAuth(instructorOnly(h))
	}

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Fahad's Sports"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")

	router.Handle("/users", asAdmin(userHandler.GetUsers)).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users/instructor", userHandler.GetInstructors).Methods("GET")
	router.Handle("/users/admin/{email}", authed(userHandler.GetRole)).Methods("GET")
	router.HandleFunc("/users/admin/{id}", userHandler.MakeAdmin).Methods("PATCH")
	router.Handle("/users/instructor/{email}", authed(userHandler.CheckInstructor)).Methods("GET")
	router.HandleFunc("/users/instructor/{id}", userHandler.MakeInstructor).Methods("PATCH")

	router.HandleFunc("/classes", classHandler.GetClasses).Methods("GET")
	router.HandleFunc("/classes/approved", classHandler.GetApproved).Methods("GET")
	router.HandleFunc("/classes/popular", classHandler.GetPopular).Methods("GET")
	router.Handle("/classes/myClasses/{email}", asInstructor(classHandler.GetMyClasses)).Methods("GET")
	router.HandleFunc("/classes", classHandler.CreateClass).Methods("POST")
	router.HandleFunc("/classes/{id}", classHandler.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/classUpdate/{id}", classHandler.UpdateClass).Methods("PATCH")
	router.HandleFunc("/classFeedback/{id}", classHandler.UpdateFeedback).Methods("PATCH")

	router.HandleFunc("/carts", cartHandler.GetCarts).Methods("GET")
	router.HandleFunc("/carts", cartHandler.AddToCart).Methods("POST")
	router.HandleFunc("/carts/{id}", cartHandler.RemoveFromCart).Methods("DELETE")
	router.Handle("/selectClasses/{email}", authed(cartHandler.GetSelected)).Methods("GET")
	router.Handle("/enrollClasses/{email}", authed(paymentHandler.GetEnrolled)).Methods("GET")

	router.Handle("/create-payment-intent", authed(paymentHandler.CreatePaymentIntent)).Methods("POST")
	router.Handle("/payments/{email}", authed(paymentHandler.GetPayments)).Methods("GET")
	router.Handle("/payments", authed(paymentHandler.RecordPayment)).Methods("POST")

	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
	)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Fahad's Sports is running on port: %s", port)
	log.Fatal(server.ListenAndServe())
}
