package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:             "test-secret",
		JWTExpiryHours:        1,
		AnalysisRatePerMinute: 1,
		AnalysisRateBurst:     2,
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())
	user := &models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane Doe"}

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Name != user.Name {
		t.Errorf("claims = %+v, want user %+v", claims, user)
	}
	if claims.OwnerID() != "jane@example.com" {
		t.Errorf("OwnerID() = %q", claims.OwnerID())
	}
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewJWTService(testConfig()).GenerateToken(&models.User{ID: "a", Email: "a@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.JWTSecret = "other"
	if _, err := NewJWTService(cfg).ValidateToken(token); err == nil {
		t.Error("ValidateToken() with wrong secret should fail")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	svc := NewJWTService(testConfig())
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	valid, err := svc.GenerateToken(&models.User{ID: "a", Email: "a@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	sign := func(method jwt.SigningMethod, key interface{}, claims Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatal(err)
		}
		return token
	}
	registered := jwt.RegisteredClaims{
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
	}
	foreign := registered
	foreign.Issuer = "someone-else"
	noExpiry := registered
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
		at    time.Time
	}{
		{"expired", valid, issued.Add(2 * time.Hour)},
		{"other algorithm", sign(jwt.SigningMethodHS512, []byte("test-secret"), Claims{UserID: "a", RegisteredClaims: registered}), issued},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{UserID: "a", RegisteredClaims: registered}), issued},
		{"other issuer", sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{UserID: "a", RegisteredClaims: foreign}), issued},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{UserID: "a", RegisteredClaims: noExpiry}), issued},
		{"no user", sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{Email: "a@example.com", RegisteredClaims: registered}), issued},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.at }
			if _, err := svc.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestRefreshTokenExtendsSession(t *testing.T) {
	svc := NewJWTService(testConfig())
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken(&models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane"})
	if err != nil {
		t.Fatal(err)
	}
	original, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}

	svc.now = func() time.Time { return issued.Add(30 * time.Minute) }
	refreshed, err := svc.RefreshToken(token)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	claims, err := svc.ValidateToken(refreshed)
	if err != nil {
		t.Fatalf("ValidateToken(refreshed) error = %v", err)
	}

	if claims.OwnerID() != "jane@example.com" || claims.Subject != "jane@example.com" || claims.Name != "Jane" {
		t.Errorf("claims = %+v", claims)
	}
	if !claims.ExpiresAt.After(original.ExpiresAt.Time) {
		t.Errorf("ExpiresAt = %v, want after %v", claims.ExpiresAt, original.ExpiresAt)
	}
	if claims.ID == "" || claims.ID == original.ID {
		t.Errorf("token ID = %q, want a new one (was %q)", claims.ID, original.ID)
	}

	svc.now = func() time.Time { return issued.Add(3 * time.Hour) }
	if _, err := svc.RefreshToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("RefreshToken(expired) err = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword("password123", hash) {
		t.Error("CheckPassword() = false for the right password")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword("", "") {
		t.Error("CheckPassword() = true for an empty hash")
	}
}

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("user:a") || !rl.Allow("user:a") {
		t.Fatal("first two requests should fit the burst")
	}
	if rl.Allow("user:a") {
		t.Error("third request should be rejected")
	}
	if !rl.Allow("user:b") {
		t.Error("another key has its own bucket")
	}

	now = now.Add(61 * time.Second)
	if !rl.Allow("user:a") {
		t.Error("a token should be refilled after a minute")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AnalysisRatePerMinute = 0
	if rl := NewRateLimiter(cfg); rl != nil {
		t.Errorf("NewRateLimiter() = %v, want nil", rl)
	}
}

func TestMiddlewareChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewJWTService(testConfig())
	cfg := testConfig()
	cfg.AnalysisRateBurst = 1

	router := gin.New()
	router.POST("/analyze", AuthMiddleware(svc), RateLimitMiddleware(NewRateLimiter(cfg)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetAuthClaims(c).Email})
	})

	token, err := svc.GenerateToken(&models.User{ID: "jane@example.com", Email: "jane@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"bad scheme", "Token " + token, http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"first request", "Bearer " + token, http.StatusOK},
		{"over the limit", "Bearer " + token, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestUserInfoFromPayload(t *testing.T) {
	tests := []struct {
		name     string
		claims   map[string]interface{}
		wantErr  bool
		wantName string
	}{
		{"complete", map[string]interface{}{"email": "a@example.com", "name": "Ann", "email_verified": true}, false, "Ann"},
		{"name falls back to email", map[string]interface{}{"email": "a@example.com"}, false, "a@example.com"},
		{"missing email", map[string]interface{}{"name": "Ann"}, true, ""},
		{"unverified email", map[string]interface{}{"email": "a@example.com", "email_verified": false}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := userInfoFromPayload(&idtoken.Payload{Subject: "g-1", Claims: tt.claims})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (info.Name != tt.wantName || info.GoogleID != "g-1") {
				t.Errorf("info = %+v", info)
			}
		})
	}
}

func TestVerifyIDTokenNotConfigured(t *testing.T) {
	svc := NewGoogleAuthService(&config.Config{})
	if _, err := svc.VerifyIDToken(context.Background(), "token"); !errors.Is(err, ErrGoogleNotConfigured) {
		t.Errorf("err = %v, want ErrGoogleNotConfigured", err)
	}
}
