package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"rentdesk/config"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

type TokenType string

const (
	AccessToken TokenType = "access"
	PortalToken TokenType = "portal"

	bearerPrefix          = "Bearer "
	defaultPortalLifetime = 7 * 24 * time.Hour
)

// Claims are carried by console access tokens issued by the auth platform.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// PortalClaims scope a client-portal link to a single booking.
type PortalClaims struct {
	BookingID     string    `json:"booking_id"`
	ReferenceCode string    `json:"reference_code"`
	Type          TokenType `json:"type"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type JWT interface {
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
	IssuePortalToken(ctx context.Context, bookingID, referenceCode string, issuedAt time.Time) (IssuedToken, error)
	ValidatePortalToken(ctx context.Context, tokenString string) (*PortalClaims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

func (s *Service) ValidateToken(_ context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := s.parse(tokenString, s.config.JWT.AccessSecret, claims); err != nil {
		return nil, err
	}

	if claims.Type != AccessToken {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) IssuePortalToken(_ context.Context, bookingID, referenceCode string, issuedAt time.Time) (IssuedToken, error) {
	lifetime := defaultPortalLifetime
	if s.config.JWT.PortalExpireMin > 0 {
		lifetime = time.Duration(s.config.JWT.PortalExpireMin) * time.Minute
	}

	expiresAt := issuedAt.Add(lifetime)
	tokenID := uuid.NewString()

	claims := PortalClaims{
		BookingID:     bookingID,
		ReferenceCode: referenceCode,
		Type:          PortalToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   bookingID,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.PortalSecret))
	if err != nil {
		return IssuedToken{}, fmt.Errorf("failed to sign portal token: %w", err)
	}

	return IssuedToken{ID: tokenID, Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *Service) ValidatePortalToken(_ context.Context, tokenString string) (*PortalClaims, error) {
	claims := &PortalClaims{}
	if err := s.parse(tokenString, s.config.JWT.PortalSecret, claims); err != nil {
		return nil, err
	}

	if claims.Type != PortalToken || claims.BookingID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) parse(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}

		return ErrInvalidToken
	}

	if !token.Valid {
		return ErrInvalidToken
	}

	return nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
