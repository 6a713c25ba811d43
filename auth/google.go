package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/resumeinsight/backend/config"
)

// ErrGoogleNotConfigured is returned when GOOGLE_CLIENT_ID is unset
var ErrGoogleNotConfigured = errors.New("Google Client ID not configured")

// GoogleAuthService verifies Google sign-in ID tokens
type GoogleAuthService struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// GoogleUserInfo is the identity carried by a verified token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID: cfg.GoogleClientID,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken verifies a Google ID token and returns user info
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	return userInfoFromPayload(payload)
}

func userInfoFromPayload(payload *idtoken.Payload) (*GoogleUserInfo, error) {
	userInfo := &GoogleUserInfo{GoogleID: payload.Subject}

	if email, ok := payload.Claims["email"].(string); ok {
		userInfo.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		userInfo.Name = name
	}

	if userInfo.Email == "" {
		return nil, errors.New("email not found in token")
	}
	// email_verified is absent on some Workspace tokens; only an explicit false is rejected
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email address is not verified")
	}
	if userInfo.Name == "" {
		userInfo.Name = userInfo.Email
	}

	return userInfo, nil
}
