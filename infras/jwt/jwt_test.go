package jwt_test

import (
	"context"
	"rentdesk/config"
	"rentdesk/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "rentdesk"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.PortalSecret = "portal-secret"
	cfg.JWT.PortalExpireMin = 60

	return jwt.New(cfg)
}

func signAccess(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestValidateToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	now := time.Now()

	valid := signAccess(t, "access-secret", jwt.Claims{
		UserID: "u-1",
		Role:   "admin",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	claims, err := svc.ValidateToken(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	expired := signAccess(t, "access-secret", jwt.Claims{
		UserID: "u-1",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})

	_, err = svc.ValidateToken(ctx, expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	_, err = svc.ValidateToken(ctx, signAccess(t, "other-secret", jwt.Claims{Type: jwt.AccessToken}))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, signAccess(t, "access-secret", jwt.Claims{Type: jwt.PortalToken}))
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestPortalTokenRoundTrip(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	issuedAt := time.Now().Truncate(time.Second)

	issued, err := svc.IssuePortalToken(ctx, "b-1", "RD-1001", issuedAt)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, issuedAt.Add(time.Hour), issued.ExpiresAt)

	claims, err := svc.ValidatePortalToken(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "b-1", claims.BookingID)
	assert.Equal(t, "RD-1001", claims.ReferenceCode)

	_, err = svc.ValidateToken(ctx, issued.Token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
