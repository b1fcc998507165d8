package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/shared/constant"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("authorization header is required")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims is the subset of the backend's access token claims the gateway reads.
type Claims struct {
	UserID    json.RawMessage `json:"user_id"`
	TokenType string          `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// User returns the numeric backend user the token was issued for.
func (c *Claims) User() (int64, error) {
	raw := strings.Trim(string(c.UserID), `"`)
	if raw == "" || raw == "null" {
		return 0, ErrInvalidClaim
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaim
	}

	return id, nil
}

// JWT reads tokens the hotel backend issued. The gateway never holds the signing key, so
// signatures are left for the backend to verify on every forwarded call.
type JWT interface {
	Inspect(tokenString string) (*Claims, error)
}

type Service struct {
	parser *jwt.Parser
}

func New() JWT {
	return &Service{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes tokenString without verifying its signature.
func (s *Service) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the token from a Bearer Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if !strings.HasPrefix(authHeader, constant.BearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return strings.TrimSpace(authHeader[len(constant.BearerPrefix):]), nil
}
