package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/config"
	"github.com/samaansync/inventory-service/pkg/logger"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("token verified with wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireToken(testSecret), func(c *gin.Context) {
		claims := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return router
}

func TestRequireToken(t *testing.T) {
	router := protectedRouter()

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	token, err := GenerateToken(testSecret, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token rejected: %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT:   config.JWTConfig{SecretKey: testSecret, ExpiryMin: 60},
		Admin: config.AdminConfig{Username: "admin", Password: "password123"},
	}
	h, err := NewAuthHandler(cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("NewAuthHandler: %v", err)
	}

	router := gin.New()
	h.RegisterRoutes(router.Group("/auth"))

	login := func(username, password string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"username": username, "password": password})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := login("admin", "password123")
	if w.Code != http.StatusOK {
		t.Fatalf("valid login rejected: %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp["token"] == "" {
		t.Fatalf("no token in response: %s", w.Body.String())
	}
	if _, err := ParseToken(testSecret, resp["token"]); err != nil {
		t.Errorf("issued token does not verify: %v", err)
	}

	if w := login("admin", "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password accepted: %d", w.Code)
	}
	if w := login("root", "password123"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong username accepted: %d", w.Code)
	}
}
