package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tim-rayner/restaurant-review-api/config"
	"github.com/tim-rayner/restaurant-review-api/internal/app/controller"
	"github.com/tim-rayner/restaurant-review-api/internal/middleware"
)

type Router struct {
	userController       *controller.UserController
	restaurantController *controller.RestaurantController
	reviewController     *controller.ReviewController
	adminController      *controller.AdminController
	config               *config.Config
}

func NewRouter(
	userController *controller.UserController,
	restaurantController *controller.RestaurantController,
	reviewController *controller.ReviewController,
	adminController *controller.AdminController,
	cfg *config.Config,
) *Router {
	return &Router{
		userController:       userController,
		restaurantController: restaurantController,
		reviewController:     reviewController,
		adminController:      adminController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Restaurant Review API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", r.userController.CreateUser)
			users.GET("/:username", r.userController.GetUser)
			users.PUT("/:username", r.userController.UpdateUser)
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", r.restaurantController.ListRestaurants)
			restaurants.GET("/search", r.restaurantController.SearchRestaurants)
			restaurants.GET("/:id", r.restaurantController.GetRestaurantByID)
			restaurants.POST("", r.restaurantController.CreateRestaurant)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.POST("", r.reviewController.SubmitReview)
			reviews.GET("/:id", r.reviewController.GetReview)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/reviews/pending", r.adminController.GetPendingReviews)
			admin.PUT("/reviews/:id", r.adminController.ProcessReview)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
