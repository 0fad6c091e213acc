package utils

import (
	"regexp"
	"strings"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NormalizeDestination canonicalizes a contact address and reports its
// channel. Emails are lowercased; phone numbers are normalized to
// international form. The phone policy is deliberately lenient: a
// 10-digit national number gets the configured default country code, a
// +-prefixed number passes through, and anything else made of digits is
// prefixed with + and left for downstream validation.
func NormalizeDestination(destination, defaultCountryCode string) (string, string, error) {
	trimmed := strings.TrimSpace(destination)
	if trimmed == "" {
		return "", "", apperrors.ErrInvalidDestination
	}

	if strings.Contains(trimmed, "@") {
		lowered := strings.ToLower(trimmed)
		if !emailShape.MatchString(lowered) {
			return "", "", apperrors.ErrInvalidDestination
		}
		return lowered, models.ChannelEmail, nil
	}

	phone, err := NormalizePhone(trimmed, defaultCountryCode)
	if err != nil {
		return "", "", err
	}
	return phone, models.ChannelSMS, nil
}

// NormalizePhone normalizes a phone number to canonical international
// form (+<digits>).
func NormalizePhone(phone, defaultCountryCode string) (string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	// Already in international form: pass through untouched
	if strings.HasPrefix(stripped, "+") {
		if !digitsOnly.MatchString(stripped[1:]) || len(stripped) < 8 {
			return "", apperrors.ErrInvalidDestination
		}
		return stripped, nil
	}

	if !digitsOnly.MatchString(stripped) {
		return "", apperrors.ErrInvalidDestination
	}

	// A 10-digit national number is assumed to belong to the default
	// country code
	if len(stripped) == 10 {
		return "+" + defaultCountryCode + stripped, nil
	}

	if len(stripped) < 7 {
		return "", apperrors.ErrInvalidDestination
	}

	// Anything else is prefixed with the international marker and the
	// delivery provider rejects it if invalid
	return "+" + stripped, nil
}

// MaskDestination redacts the middle of a contact address for logging
func MaskDestination(destination string) string {
	if at := strings.Index(destination, "@"); at > 0 {
		local := destination[:at]
		if len(local) <= 2 {
			return "**" + destination[at:]
		}
		return local[:2] + strings.Repeat("*", len(local)-2) + destination[at:]
	}
	if len(destination) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(destination)-4) + destination[len(destination)-4:]
}
