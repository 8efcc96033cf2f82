// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"boatify/services/boat"
	"boatify/services/payment"
	"boatify/services/reservation"
	"boatify/services/review"
	"boatify/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// wiring.
type HandlerBundle struct {
	Users        *UserHandler
	Boats        *BoatHandler
	Reservations *ReservationHandler
	Reviews      *ReviewHandler
	Payments     *PaymentHandler
}

// NewHandlerBundle wires the services into their handlers.
func NewHandlerBundle(
	userSvc user.UserService,
	boatSvc boat.BoatService,
	reservationSvc reservation.ReservationService,
	reviewSvc review.ReviewService,
	paymentSvc payment.PaymentService,
) *HandlerBundle {
	return &HandlerBundle{
		Users:        &UserHandler{UserService: userSvc},
		Boats:        &BoatHandler{BoatService: boatSvc},
		Reservations: &ReservationHandler{ReservationService: reservationSvc},
		Reviews:      &ReviewHandler{ReviewService: reviewSvc},
		Payments:     &PaymentHandler{PaymentService: paymentSvc},
	}
}

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
