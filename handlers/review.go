// File: handlers/review.go
package handlers

import (
	"net/http"

	"boatify/middleware"
	"boatify/models"
	"boatify/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// SubmitReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rev, boat, created, err := h.ReviewService.Submit(actor.UserID, input.BoatID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"review": rev, "boat": boat})
}

// GetBoatReviewsHandler handles GET /api/boats/id/:id/reviews.
func (h *ReviewHandler) GetBoatReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.GetForBoat(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetBoatAverageRatingHandler handles GET /api/boats/id/:id/reviews/average.
func (h *ReviewHandler) GetBoatAverageRatingHandler(c *gin.Context) {
	avg, err := h.ReviewService.AverageForBoat(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"average": avg})
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.ReviewService.Delete(actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// GetAllReviewsHandler handles GET /api/admin/reviews.
func (h *ReviewHandler) GetAllReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
