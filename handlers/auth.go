package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/storage"
)

// GoogleVerifier verifies Google sign-in ID tokens
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      storage.UserStore
	jwtService *auth.JWTService
	googleAuth GoogleVerifier
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	users storage.UserStore,
	jwtService *auth.JWTService,
	googleAuth GoogleVerifier,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		googleAuth: googleAuth,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Email:    normalizeEmail(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Password: hashedPassword,
		Provider: models.ProviderEmail,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "An account with this email already exists",
				Code:  http.StatusConflict,
			})
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Registration failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User registered: %s", user.Email)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			log.Printf("[AuthHandler] Failed to load user: %v", err)
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	if user.Provider == models.ProviderGoogle && user.Password == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "This account uses Google Sign-In. Please login with Google.",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Verify password
	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if errors.Is(err, auth.ErrGoogleNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Google sign-in is not available",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid Google token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	email := normalizeEmail(googleUser.Email)
	user, err := h.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		user = &models.User{
			Email:    email,
			Name:     googleUser.Name,
			Provider: models.ProviderGoogle,
			GoogleID: googleUser.GoogleID,
		}

		if err := h.users.CreateUser(ctx, user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to create account",
				Code:  http.StatusInternalServerError,
			})
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	case err != nil:
		log.Printf("[AuthHandler] Failed to load user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to sign in",
			Code:  http.StatusInternalServerError,
		})
		return
	case user.GoogleID == "":
		// an email account signing in with Google for the first time keeps its password
		if err := h.users.UpdateUser(ctx, user.Email, map[string]interface{}{
			"googleId": googleUser.GoogleID,
		}); err != nil {
			log.Printf("[AuthHandler] Failed to link Google account: %v", err)
		}
		user.GoogleID = googleUser.GoogleID
	}

	// Generate JWT token
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		User: user,
	})
}

// UpdateProfile updates the current user's profile
// @Summary Update user profile
// @Description Update the authenticated user's profile (name)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if err := h.users.UpdateUserProfile(c.Request.Context(), claims.Email, strings.TrimSpace(req.Name)); err != nil {
		log.Printf("[AuthHandler] Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	log.Printf("[AuthHandler] Profile updated: %s", claims.Email)
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:    user,
		Message: "Profile updated successfully",
	})
}

// RefreshToken issues a new token for a valid one
// @Summary Refresh token
// @Description Exchange a valid JWT for one with a fresh expiry
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AuthResponse "Token refreshed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	token, err := h.jwtService.RefreshToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		Message: "Token refreshed",
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
