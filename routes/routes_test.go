// File: routes/routes_test.go
package routes

import (
	"net/http"
	"testing"

	"boatify/handlers"

	"github.com/gin-gonic/gin"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, route := range r.Routes() {
		set[route.Method+" "+route.Path] = true
	}
	return set
}

func TestSetupRoutesRegistersSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, handlers.NewHandlerBundle(nil, nil, nil, nil, nil))
	routes := routeSet(r)

	expected := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/boats",
		http.MethodGet + " /api/boats/search",
		http.MethodGet + " /api/boats/filter-limits",
		http.MethodGet + " /api/boats/id/:id",
		http.MethodGet + " /api/boats/id/:id/booked-dates",
		http.MethodGet + " /api/boats/id/:id/reviews",
		http.MethodGet + " /api/boats/id/:id/reviews/average",
		http.MethodPost + " /api/reservations",
		http.MethodGet + " /api/reservations",
		http.MethodGet + " /api/reservations/id/:id",
		http.MethodPut + " /api/reservations/id/:id",
		// Cancellation is a DELETE on the reservation itself.
		http.MethodDelete + " /api/reservations/id/:id",
		http.MethodPut + " /api/reservations/id/:id/payment-success",
		http.MethodPost + " /api/reviews",
		http.MethodDelete + " /api/reviews/:id",
		http.MethodGet + " /api/profile",
		http.MethodPut + " /api/profile",
		http.MethodPost + " /api/payments/create-session",
		http.MethodPost + " /api/payments/webhook",
		http.MethodGet + " /api/admin/users",
		http.MethodGet + " /api/admin/users/:id",
		http.MethodPut + " /api/admin/users/:id",
		http.MethodDelete + " /api/admin/users/:id",
		http.MethodGet + " /api/admin/boats",
		http.MethodGet + " /api/admin/boats/:id",
		http.MethodPost + " /api/admin/boats",
		http.MethodPut + " /api/admin/boats/:id",
		http.MethodDelete + " /api/admin/boats/:id",
		http.MethodGet + " /api/admin/reservations",
		http.MethodGet + " /api/admin/reservations/:id",
		http.MethodPut + " /api/admin/reservations/:id/status",
		http.MethodDelete + " /api/admin/reservations/:id",
		http.MethodGet + " /api/admin/reviews",
		http.MethodDelete + " /api/admin/reviews/:id",
		http.MethodGet + " /api/admin/reports/top-reserved-boats",
	}

	for _, want := range expected {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}
