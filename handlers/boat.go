// File: handlers/boat.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"boatify/models"
	"boatify/services/boat"

	"github.com/gin-gonic/gin"
)

// BoatHandler serves the boat catalog endpoints.
type BoatHandler struct {
	BoatService boat.BoatService
}

// GetPublishedBoatsHandler handles GET /api/boats.
func (h *BoatHandler) GetPublishedBoatsHandler(c *gin.Context) {
	boats, err := h.BoatService.GetPublishedBoats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boats)
}

// GetBoatByIDHandler handles GET /api/boats/id/:id.
func (h *BoatHandler) GetBoatByIDHandler(c *gin.Context) {
	b, err := h.BoatService.GetBoatByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SearchBoatsHandler handles GET /api/boats/search.
func (h *BoatHandler) SearchBoatsHandler(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.BoatService.SearchBoats(*filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookedDatesHandler handles GET /api/boats/id/:id/booked-dates.
func (h *BoatHandler) GetBookedDatesHandler(c *gin.Context) {
	ranges, err := h.BoatService.GetBookedDates(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranges)
}

// GetFilterLimitsHandler handles GET /api/boats/filter-limits.
func (h *BoatHandler) GetFilterLimitsHandler(c *gin.Context) {
	limits, err := h.BoatService.GetFilterLimits()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, limits)
}

// GetAllBoatsHandler handles GET /api/admin/boats.
func (h *BoatHandler) GetAllBoatsHandler(c *gin.Context) {
	boats, err := h.BoatService.GetAllBoats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boats)
}

// CreateBoatHandler handles POST /api/admin/boats.
func (h *BoatHandler) CreateBoatHandler(c *gin.Context) {
	var input models.BoatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.BoatService.CreateBoat(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBoatHandler handles PUT /api/admin/boats/:id.
func (h *BoatHandler) UpdateBoatHandler(c *gin.Context) {
	var input models.BoatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.BoatService.UpdateBoat(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBoatHandler handles DELETE /api/admin/boats/:id.
func (h *BoatHandler) DeleteBoatHandler(c *gin.Context) {
	if err := h.BoatService.DeleteBoat(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Boat deleted"})
}

// parseSearchFilter reads the search query parameters. Unparseable numeric
// or date values are reported, not silently dropped.
func parseSearchFilter(c *gin.Context) (*models.BoatSearchFilter, error) {
	filter := &models.BoatSearchFilter{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
	}

	var err error
	if filter.PriceMin, err = queryFloat(c, "priceMin"); err != nil {
		return nil, err
	}
	if filter.PriceMax, err = queryFloat(c, "priceMax"); err != nil {
		return nil, err
	}
	if filter.CapacityMin, err = queryInt(c, "capacityMin"); err != nil {
		return nil, err
	}
	if filter.CapacityMax, err = queryInt(c, "capacityMax"); err != nil {
		return nil, err
	}
	if filter.RatingMin, err = queryFloat(c, "ratingMin"); err != nil {
		return nil, err
	}
	if filter.YearMin, err = queryInt(c, "yearMin"); err != nil {
		return nil, err
	}
	if filter.YearMax, err = queryInt(c, "yearMax"); err != nil {
		return nil, err
	}
	if filter.LengthMin, err = queryFloat(c, "lengthMin"); err != nil {
		return nil, err
	}
	if filter.LengthMax, err = queryFloat(c, "lengthMax"); err != nil {
		return nil, err
	}
	if filter.CabinsMin, err = queryInt(c, "cabinsMin"); err != nil {
		return nil, err
	}
	if raw := c.Query("withCaptain"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		filter.WithCaptain = &v
	}
	if filter.StartDate, err = queryDate(c, "startDate"); err != nil {
		return nil, err
	}
	if filter.EndDate, err = queryDate(c, "endDate"); err != nil {
		return nil, err
	}
	if raw := c.Query("page"); raw != "" {
		if filter.Page, err = strconv.Atoi(raw); err != nil {
			return nil, err
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if filter.Limit, err = strconv.Atoi(raw); err != nil {
			return nil, err
		}
	}
	return filter, nil
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	// Accept full RFC 3339 timestamps or bare dates.
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
