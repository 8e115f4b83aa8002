package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voyago/travel-planner/internal/service"
	"voyago/travel-planner/internal/storage"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	corsOrigins []string,
	authService service.AuthService,
	tripService service.TripService,
	activityService service.ActivityService,
	recommendationService service.RecommendationService,
	fileStorage storage.FileStorage,
) {

	authHandler := NewAuthHandler(authService)
	tripHandler := NewTripHandler(tripService)
	activityHandler := NewActivityHandler(activityService)
	recommendationHandler := NewRecommendationHandler(recommendationService)
	uploadHandler := NewUploadHandler(fileStorage)

	authMiddleware := AuthMiddleware(jwtSecret)

	// Browser clients hit this API directly.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = corsOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public: the explore feed, single trip pages and their activities
		// are readable without an account; so is the recommendation proxy.
		apiV1.GET("/explore", tripHandler.Explore)
		apiV1.GET("/trips/:id", tripHandler.GetTrip)
		apiV1.GET("/trips/:id/summary", tripHandler.GetTripSummary)
		apiV1.GET("/trips/:id/activities", activityHandler.ListActivities)
		apiV1.POST("/recommendations", recommendationHandler.GetRecommendations)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// --- Trip Routes ---
		protected.POST("/trips", tripHandler.CreateTrip)
		protected.GET("/trips", tripHandler.ListTrips)
		protected.PUT("/trips/:id", tripHandler.UpdateTrip)
		protected.PATCH("/trips/:id/favorite", tripHandler.SetFavorite)
		protected.DELETE("/trips/:id", tripHandler.DeleteTrip)

		// --- Activity Routes ---
		protected.POST("/trips/:id/activities", activityHandler.CreateActivity)
		protected.PUT("/activities/:id", activityHandler.UpdateActivity)
		protected.DELETE("/activities/:id", activityHandler.DeleteActivity)

		// --- Upload Routes ---
		protected.POST("/uploads", uploadHandler.Upload)
		protected.GET("/uploads/presign", uploadHandler.Presign)
		protected.GET("/uploads/download", uploadHandler.PresignDownload)
		protected.DELETE("/uploads", uploadHandler.Delete)
	}
}
