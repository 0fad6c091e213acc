package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.Issuer = "kirana-session"
	cfg.Auth.AssertionAudience = "kirana-bootstrap"
	cfg.Auth.SessionAudience = "kirana-app"
	cfg.Auth.AssertionExpiryMin = 5
	cfg.Auth.SessionExpiryMin = 60
	return cfg
}

func TestAssertionRoundTrip(t *testing.T) {
	cfg := testConfig()

	signed, expiresAt, err := GenerateAssertion("subject-1", "+919876543210", "", cfg)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := VerifyAssertion(signed, cfg)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", claims.Subject)
	assert.Equal(t, "+919876543210", claims.Phone)
	assert.Empty(t, claims.Email)
}

func TestVerifyAssertion_WrongSecret(t *testing.T) {
	cfg := testConfig()
	signed, _, err := GenerateAssertion("subject-1", "+919876543210", "", cfg)
	require.NoError(t, err)

	other := testConfig()
	other.Auth.Secret = "different-secret"

	_, err = VerifyAssertion(signed, other)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyAssertion_Expired(t *testing.T) {
	cfg := testConfig()

	claims := AssertionClaims{
		Phone: "+919876543210",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Auth.AssertionAudience},
			Subject:   "subject-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-10 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-5 * time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.Secret))
	require.NoError(t, err)

	_, err = VerifyAssertion(signed, cfg)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyAssertion_SessionTokenRejected(t *testing.T) {
	// A session token must not pass as an identity assertion
	cfg := testConfig()
	signed, _, err := GenerateSessionToken("subject-1", models.RoleUser, cfg)
	require.NoError(t, err)

	_, err = VerifyAssertion(signed, cfg)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	signed, _, err := GenerateSessionToken("subject-2", models.RoleAdmin, cfg)
	require.NoError(t, err)

	claims, err := VerifySessionToken(signed, cfg)
	require.NoError(t, err)
	assert.Equal(t, "subject-2", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerifyAssertion_Garbage(t *testing.T) {
	_, err := VerifyAssertion("not-a-token", testConfig())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
