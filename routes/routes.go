// File: routes/routes.go
package routes

import (
	"time"

	"boatify/handlers"
	"boatify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)
	}
}

// RegisterBoatRoutes registers the public catalog endpoints.
func RegisterBoatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/boats")
	{
		api.GET("", hb.Boats.GetPublishedBoatsHandler)
		api.GET("/search", hb.Boats.SearchBoatsHandler)
		api.GET("/filter-limits", hb.Boats.GetFilterLimitsHandler)
		api.GET("/id/:id", hb.Boats.GetBoatByIDHandler)
		api.GET("/id/:id/booked-dates", hb.Boats.GetBookedDatesHandler)
		api.GET("/id/:id/reviews", hb.Reviews.GetBoatReviewsHandler)
		api.GET("/id/:id/reviews/average", hb.Reviews.GetBoatAverageRatingHandler)
	}
}

// RegisterReservationRoutes registers the user-facing reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Reservations.CreateReservationHandler)
		api.GET("", hb.Reservations.GetMyReservationsHandler)
		api.GET("/id/:id", hb.Reservations.GetReservationByIDHandler)
		api.PUT("/id/:id", hb.Reservations.UpdateReservationDatesHandler)
		api.DELETE("/id/:id", hb.Reservations.CancelReservationHandler)
		api.PUT("/id/:id/payment-success", hb.Reservations.PaymentSuccessHandler)
	}
}

// RegisterReviewRoutes registers the authenticated review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Reviews.SubmitReviewHandler)
		api.DELETE("/:id", hb.Reviews.DeleteReviewHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Users.GetProfileHandler)
		api.PUT("", hb.Users.UpdateProfileHandler)
	}
}

// RegisterPaymentRoutes registers checkout and the Stripe webhook. The
// webhook is public: Stripe authenticates it by signature, not by token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/webhook", hb.Payments.StripeWebhookHandler)
		api.POST("/create-session", middleware.JWTAuthMiddleware(), hb.Payments.CreateCheckoutSessionHandler)
	}
}

// RegisterAdminRoutes registers the admin endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())

		api.GET("/users", hb.Users.GetAllUsersHandler)
		api.GET("/users/:id", hb.Users.GetUserByIDHandler)
		api.PUT("/users/:id", hb.Users.AdminUpdateUserHandler)
		api.DELETE("/users/:id", hb.Users.DeleteUserHandler)

		api.GET("/boats", hb.Boats.GetAllBoatsHandler)
		api.GET("/boats/:id", hb.Boats.GetBoatByIDHandler)
		api.POST("/boats", hb.Boats.CreateBoatHandler)
		api.PUT("/boats/:id", hb.Boats.UpdateBoatHandler)
		api.DELETE("/boats/:id", hb.Boats.DeleteBoatHandler)

		api.GET("/reservations", hb.Reservations.GetAllReservationsHandler)
		api.GET("/reservations/:id", hb.Reservations.GetReservationByIDHandler)
		api.PUT("/reservations/:id/status", hb.Reservations.SetReservationStatusHandler)
		api.DELETE("/reservations/:id", hb.Reservations.DeleteReservationHandler)

		api.GET("/reviews", hb.Reviews.GetAllReviewsHandler)
		api.DELETE("/reviews/:id", hb.Reviews.DeleteReviewHandler)

		api.GET("/reports/top-reserved-boats", hb.Reservations.TopReservedBoatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// SetupRoutes configures the gin engine with global middleware and all route
// groups.
func SetupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBoatRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
