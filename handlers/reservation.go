// File: handlers/reservation.go
package handlers

import (
	"net/http"

	"boatify/middleware"
	"boatify/models"
	"boatify/services/reservation"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves the reservation endpoints.
type ReservationHandler struct {
	ReservationService reservation.ReservationService
}

// CreateReservationHandler handles POST /api/reservations.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.ReservationService.Create(c.Request.Context(), actor.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetMyReservationsHandler handles GET /api/reservations.
func (h *ReservationHandler) GetMyReservationsHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	reservations, err := h.ReservationService.GetMine(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationByIDHandler handles GET /api/reservations/id/:id.
func (h *ReservationHandler) GetReservationByIDHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	res, err := h.ReservationService.GetByID(actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateReservationDatesHandler handles PUT /api/reservations/id/:id.
func (h *ReservationHandler) UpdateReservationDatesHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var input models.ReservationDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.ReservationService.UpdateDates(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservationHandler handles DELETE /api/reservations/id/:id.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.ReservationService.Cancel(actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

// PaymentSuccessHandler handles PUT /api/reservations/id/:id/payment-success.
func (h *ReservationHandler) PaymentSuccessHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.ReservationService.MarkPaid(actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}

// GetAllReservationsHandler handles GET /api/admin/reservations.
func (h *ReservationHandler) GetAllReservationsHandler(c *gin.Context) {
	reservations, err := h.ReservationService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// SetReservationStatusHandler handles PUT /api/admin/reservations/:id/status.
func (h *ReservationHandler) SetReservationStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ReservationService.SetStatus(c.Param("id"), input.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteReservationHandler handles DELETE /api/admin/reservations/:id.
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	if err := h.ReservationService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted"})
}

// TopReservedBoatsHandler handles GET /api/admin/reports/top-reserved-boats.
func (h *ReservationHandler) TopReservedBoatsHandler(c *gin.Context) {
	rows, err := h.ReservationService.TopReservedBoats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
