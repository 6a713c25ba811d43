package models

import "time"

// User represents a user in Firestore
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"user@example.com"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Name      string    `json:"name" firestore:"name" example:"Jane Doe"`
	Password  string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	Provider  string    `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UpdateProfileRequest represents profile update request
// @Description Profile update request
type UpdateProfileRequest struct {
	Name string `json:"name,omitempty" example:"Jane Smith"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}

// ProfileResponse represents user profile response
// @Description User profile response
type ProfileResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Profile updated successfully"`
}
