// File: boatify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boatify/config"
	"boatify/cron"
	"boatify/database"
	boatRepoPkg "boatify/database/repository/boat"
	reservationRepoPkg "boatify/database/repository/reservation"
	reviewRepoPkg "boatify/database/repository/review"
	userRepoPkg "boatify/database/repository/user"
	"boatify/handlers"
	"boatify/routes"
	"boatify/services/boat"
	"boatify/services/payment"
	"boatify/services/reservation"
	"boatify/services/review"
	"boatify/services/user"
	"boatify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	boatRepo := boatRepoPkg.NewMongoBoatRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	boatService := &boat.DefaultBoatService{
		Repo:            boatRepo,
		ReservationRepo: reservationRepo,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:                reservationRepo,
		BoatRepo:            boatRepo,
		MinDays:             config.AppConfig.ReservationMinDays,
		MaxDays:             config.AppConfig.ReservationMaxDays,
		AutoRejectAfterDays: config.AppConfig.AutoRejectAfterDays,
	}
	reviewService := &review.DefaultReviewService{
		Repo:            reviewRepo,
		BoatRepo:        boatRepo,
		ReservationRepo: reservationRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Reservations: reservationService,
		BoatRepo:     boatRepo,
	}

	handlerBundle := handlers.NewHandlerBundle(
		userService,
		boatService,
		reservationService,
		reviewService,
		paymentService,
	)

	routes.SetupRoutes(router, handlerBundle)

	// Background sweep for stale pending reservations.
	cron.InitSweepWorker(reservationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
