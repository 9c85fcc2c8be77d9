package auth

import (
	"fmt"
	"time"

	apperrors "scrimhub-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the JWT payload identifying the acting player
type AuthClaims struct {
	ViewerID int64  `json:"viewer_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and validates viewer tokens
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// IssueJWT creates a signed token for a viewer
func (s *AuthService) IssueJWT(viewerID int64, username string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		ViewerID: viewerID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", viewerID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.ViewerID == 0 {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}
