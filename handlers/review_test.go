// File: handlers/review_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boatify/models"

	"github.com/gin-gonic/gin"
)

// stubReviewService reports a created review on the first submission and an
// updated one afterwards.
type stubReviewService struct {
	submissions int
}

func (s *stubReviewService) Submit(userID, boatID string, input models.ReviewInput) (*models.Review, *models.Boat, bool, error) {
	s.submissions++
	rev := &models.Review{ID: "rev-1", UserID: userID, BoatID: boatID, Rating: input.Rating}
	boat := &models.Boat{ID: boatID, Rating: float64(input.Rating)}
	return rev, boat, s.submissions == 1, nil
}

func (s *stubReviewService) GetForBoat(string) ([]models.Review, error)    { return nil, nil }
func (s *stubReviewService) AverageForBoat(string) (float64, error)        { return 0, nil }
func (s *stubReviewService) GetAll() ([]models.Review, error)              { return nil, nil }
func (s *stubReviewService) Delete(models.Actor, string) error             { return nil }

func TestSubmitReviewHandlerStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &ReviewHandler{ReviewService: &stubReviewService{}}
	r.POST("/api/reviews", h.SubmitReviewHandler)

	submit := func() *httptest.ResponseRecorder {
		body := `{"boatId":"boat-1","rating":4}`
		req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := submit(); w.Code != http.StatusCreated {
		t.Errorf("first submission: expected 201, got %d", w.Code)
	}
	if w := submit(); w.Code != http.StatusOK {
		t.Errorf("resubmission: expected 200, got %d", w.Code)
	}
}
