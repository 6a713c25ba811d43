package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

// Issuer is the iss claim of every session token
const Issuer = "resumeinsight"

var (
	// ErrInvalidToken wraps every reason a session token is refused
	ErrInvalidToken = errors.New("invalid session token")
	errNoOwner      = errors.New("token names no user")
)

// session tokens are only ever signed with HS256
var signingMethod = jwt.SigningMethodHS256

// JWTService issues and checks the session tokens handed out at login
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Claims is the payload of a session token. Subject carries the owner key
// analyses are stored under.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.JWTExpiryHours) * time.Hour,
		now:    time.Now,
	}
}

// GenerateToken starts a session for the user
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	return s.issue(user.ID, user.Email, user.Name)
}

// RefreshToken re-issues a still valid token with a new expiry and token ID
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return s.issue(claims.UserID, claims.Email, claims.Name)
}

func (s *JWTService) issue(userID, email, name string) (string, error) {
	if userID == "" {
		return "", errNoOwner
	}

	issuedAt := s.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm, issuer and expiry and returns
// the claims. Every failure wraps ErrInvalidToken.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	var claims Claims
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, errNoOwner)
	}
	return &claims, nil
}

// OwnerID returns the key analyses are owned by
func (c *Claims) OwnerID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Email
}
