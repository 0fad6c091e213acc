// Package token mints and verifies the two JWT kinds the service deals
// in: short-lived identity assertions issued on a confirmed one-time
// code, and longer-lived application session tokens issued at
// bootstrap. Both are HS256 with a shared secret; the audience claim
// keeps one kind from being replayed as the other.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// AssertionClaims are the verified-identity claims carried by an
// identity assertion
type AssertionClaims struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SessionClaims are the application-session claims issued at bootstrap
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAssertion mints a signed identity assertion for a verified
// contact. Exactly one of phone/email is set, depending on the channel
// the code was confirmed over.
func GenerateAssertion(subjectID, phone, email string, cfg *models.Config) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Auth.AssertionExpiryMin) * time.Minute)

	claims := AssertionClaims{
		Phone: phone,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Auth.AssertionAudience},
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign assertion: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// VerifyAssertion validates signature, expiry, issuer and audience of
// an identity assertion and returns its claims. Any failure maps to
// ErrUnauthorized: an expired or malformed assertion cannot be retried,
// the client must restart verification.
func VerifyAssertion(tokenString string, cfg *models.Config) (*AssertionClaims, error) {
	claims := &AssertionClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.Secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if !claims.VerifyIssuer(cfg.Auth.Issuer, true) {
		return nil, apperrors.ErrUnauthorized
	}
	if !claims.VerifyAudience(cfg.Auth.AssertionAudience, true) {
		return nil, apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// GenerateSessionToken mints the application session token returned by
// a successful bootstrap
func GenerateSessionToken(subjectID, role string, cfg *models.Config) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Auth.SessionExpiryMin) * time.Minute)

	claims := SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Auth.SessionAudience},
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// VerifySessionToken validates an application session token
func VerifySessionToken(tokenString string, cfg *models.Config) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.Secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if !claims.VerifyAudience(cfg.Auth.SessionAudience, true) {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
