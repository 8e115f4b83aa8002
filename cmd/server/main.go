package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/travel-planner/internal/api"
	"voyago/travel-planner/internal/config"
	"voyago/travel-planner/internal/recommend"
	"voyago/travel-planner/internal/repository/mongo"
	"voyago/travel-planner/internal/service"
	"voyago/travel-planner/internal/storage"
)

func main() {
	log.Println("Starting Travel Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() { // Index creation runs in the background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureTripIndexes(ctx, appDB.Collection("trips"))
		mongo.EnsureActivityIndexes(ctx, appDB.Collection("activities"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	var fileStorage storage.FileStorage
	switch cfg.Storage.Provider {
	case "cloudinary":
		fileStorage, err = storage.NewCloudinaryStorage(cfg.Storage.Cloudinary)
	default:
		fileStorage, err = storage.NewS3Storage(cfg.Storage.S3)
	}
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize %s storage: %v", cfg.Storage.Provider, err)
	}

	// --- Initialize Recommendation Client ---
	var recommendClient recommend.Client
	if cfg.Recommend.Endpoint != "" {
		recommendClient = recommend.NewHTTPClient(cfg.Recommend.Endpoint, cfg.Recommend.APIKey, cfg.Recommend.Timeout)
		log.Printf("Recommendation client pointed at %s", cfg.Recommend.Endpoint)
	} else {
		recommendClient = recommend.NewStaticGenerator()
		log.Println("No recommendation endpoint configured; using built-in generator.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	tripRepo := mongo.NewMongoTripRepository(appDB)
	activityRepo := mongo.NewMongoActivityRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	tripService := service.NewTripService(tripRepo, activityRepo)
	activityService := service.NewActivityService(activityRepo, tripRepo)
	recommendationService := service.NewRecommendationService(recommendClient)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.CORS.AllowOrigins,
		authService, tripService, activityService, recommendationService, fileStorage)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// In-flight requests get five seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
