package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lbseries/internal/config"
	"lbseries/internal/domain"
	"lbseries/internal/service"
)

var testJWT = config.JWTConfig{
	Secret:   "test-secret",
	Issuer:   "lbseries",
	Audience: "lbseries-hooks",
	Expiry:   time.Hour,
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := service.NewTokenService(testJWT)

	token, err := svc.Issue("erp-site", 0, service.ScopeHooks)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "erp-site", claims.Subject)
	assert.True(t, claims.HasScope(service.ScopeHooks))
	assert.False(t, claims.HasScope(service.ScopeReports))
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_DefaultScopes(t *testing.T) {
	svc := service.NewTokenService(testJWT)

	token, err := svc.Issue("erp-site", time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.ElementsMatch(t, service.AllScopes, claims.Scope)
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	other := testJWT
	other.Secret = "other-secret"
	token, err := service.NewTokenService(other).Issue("erp-site", time.Minute)
	require.NoError(t, err)

	_, err = service.NewTokenService(testJWT).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Validate_WrongAudience(t *testing.T) {
	other := testJWT
	other.Audience = "someone-else"
	token, err := service.NewTokenService(other).Issue("erp-site", time.Minute)
	require.NoError(t, err)

	_, err = service.NewTokenService(testJWT).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Validate_Expired(t *testing.T) {
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "erp-site",
			Issuer:    testJWT.Issuer,
			Audience:  jwt.ClaimStrings{testJWT.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Scope: service.AllScopes,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWT.Secret))
	require.NoError(t, err)

	_, err = service.NewTokenService(testJWT).Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Validate_Garbage(t *testing.T) {
	_, err := service.NewTokenService(testJWT).Validate("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
