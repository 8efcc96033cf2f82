// File: middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boatify/models"
	"boatify/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		actor := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": actor.UserID, "role": actor.Role})
	})
	r.GET("/admin", JWTAuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	token, err := utils.GenerateToken("user-1", models.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(t, r, "/protected", token); w.Code != http.StatusOK {
		t.Errorf("valid token rejected: %d %s", w.Code, w.Body.String())
	}
	if w := doRequest(t, r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header accepted: %d", w.Code)
	}
	if w := doRequest(t, r, "/protected", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token accepted: %d", w.Code)
	}

	expired, err := utils.GenerateToken("user-1", models.RoleUser, -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if w := doRequest(t, r, "/protected", expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token accepted: %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthRouter()

	userToken, err := utils.GenerateToken("user-1", models.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	adminToken, err := utils.GenerateToken("admin-1", models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(t, r, "/admin", adminToken); w.Code != http.StatusOK {
		t.Errorf("admin rejected: %d %s", w.Code, w.Body.String())
	}
	if w := doRequest(t, r, "/admin", userToken); w.Code != http.StatusForbidden {
		t.Errorf("regular user reached admin route: %d", w.Code)
	}
	if w := doRequest(t, r, "/admin", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous reached admin route: %d", w.Code)
	}
}
