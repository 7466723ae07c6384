package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/utils"
)

const testSecret = "test-secret"

func newRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	w := doRequest(newRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	w := doRequest(newRouter(), "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ValidTokenSetsContext(t *testing.T) {
	token, err := utils.GenerateToken(9, models.RoleMerchant, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(newRouter(), token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		UserID uint   `json:"userId"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.UserID != 9 || body.Role != models.RoleMerchant {
		t.Fatalf("unexpected context values: %+v", body)
	}
}

func TestAuth_RoleEnforcement(t *testing.T) {
	merchantToken, _ := utils.GenerateToken(1, models.RoleMerchant, testSecret, time.Hour)
	adminToken, _ := utils.GenerateToken(2, models.RoleAdmin, testSecret, time.Hour)

	adminRouter := newRouter(models.RoleAdmin)

	if w := doRequest(adminRouter, merchantToken); w.Code != http.StatusForbidden {
		t.Fatalf("merchant on admin route: status = %d, want 403", w.Code)
	}
	if w := doRequest(adminRouter, adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin on admin route: status = %d, want 200", w.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token, _ := utils.GenerateToken(1, models.RoleMerchant, testSecret, -time.Minute)
	if w := doRequest(newRouter(), token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
