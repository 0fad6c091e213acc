package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/pkg/token"
	"github.com/mittalrohan/kirana/internal/utils"
)

// RequestCode verifies the human-verification gate, opens a new
// challenge for the destination (superseding any live one) and hands
// the code to the out-of-band delivery stream.
func (u *SessionUC) RequestCode(ctx context.Context, destination, captchaToken, remoteIP string) (*models.RequestCodeResponse, error) {
	normalized, channel, err := utils.NormalizeDestination(destination, u.cfg.Auth.DefaultCountryCode)
	if err != nil {
		return nil, err
	}

	// The gate must be solved before any challenge state is created;
	// gate failures are never retried automatically
	if err := u.gw.VerifyCaptcha(ctx, captchaToken, remoteIP); err != nil {
		return nil, err
	}

	cooldown := time.Duration(u.cfg.OTP.CooldownSeconds) * time.Second
	wait, reserved, err := u.repo.ReserveCooldown(ctx, normalized, cooldown)
	if err != nil {
		return nil, fmt.Errorf("failed to check cooldown: %w", err)
	}
	if !reserved {
		return nil, fmt.Errorf("%w: retry in %ds", apperrors.ErrRateLimited, int(wait.Seconds()))
	}

	code, err := generateCode(u.cfg.OTP.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash code: %w", err)
	}

	now := time.Now()
	challenge := &models.Challenge{
		Ref:          uuid.New().String(),
		Destination:  normalized,
		Channel:      channel,
		CodeHash:     string(codeHash),
		AttemptsLeft: u.cfg.OTP.MaxAttempts,
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := u.repo.CreateChallenge(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	// Delivery is out of band: a worker picks the event up and sends
	// the SMS or email
	err = u.gw.PublishCodeDispatch(ctx, models.CodeDispatchEvent{
		Destination: normalized,
		Channel:     channel,
		Code:        code,
		ExpiresAt:   challenge.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}

	logger.Info("Verification code requested",
		logger.String("destination", utils.MaskDestination(normalized)),
		logger.String("channel", channel),
		logger.String("challenge_ref", challenge.Ref))

	return &models.RequestCodeResponse{
		ChallengeRef: challenge.Ref,
		ExpiresAt:    challenge.ExpiresAt.Unix(),
	}, nil
}

// ConfirmCode checks a submitted code against its challenge. The
// challenge is single use: success consumes it, and so does running
// out of attempts. A successful confirmation mints the identity
// assertion for the bootstrap endpoint.
func (u *SessionUC) ConfirmCode(ctx context.Context, challengeRef, code string) (*models.AssertionResponse, error) {
	if challengeRef == "" || code == "" {
		return nil, apperrors.ErrInvalidCode
	}

	challenge, err := u.repo.GetChallenge(ctx, challengeRef)
	if err != nil {
		return nil, err
	}

	if time.Now().After(challenge.ExpiresAt) {
		return nil, apperrors.ErrChallengeExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
		remaining, err := u.repo.DecrementChallengeAttempts(ctx, challenge.Ref)
		if err != nil {
			return nil, fmt.Errorf("failed to record attempt: %w", err)
		}
		if remaining <= 0 {
			if err := u.repo.ConsumeChallenge(ctx, challenge); err != nil {
				return nil, fmt.Errorf("failed to invalidate challenge: %w", err)
			}
			return nil, apperrors.ErrChallengeConsumed
		}
		return nil, fmt.Errorf("%w: %d attempts left", apperrors.ErrCodeMismatch, remaining)
	}

	if err := u.repo.ConsumeChallenge(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	// Reuse the subject id already bound to this contact so identities
	// stay stable across logins
	var phone, email string
	if challenge.Channel == models.ChannelEmail {
		email = challenge.Destination
	} else {
		phone = challenge.Destination
	}

	subjectID, found, err := u.repo.GetSubjectByContact(ctx, phone, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}
	if !found {
		subjectID = uuid.New()
	}

	assertion, expiresAt, err := token.GenerateAssertion(subjectID.String(), phone, email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue assertion: %w", err)
	}

	logger.Info("Verification code confirmed",
		logger.String("destination", utils.MaskDestination(challenge.Destination)),
		logger.String("subject_id", subjectID.String()),
		logger.Bool("known_contact", found))

	return &models.AssertionResponse{
		Assertion: assertion,
		ExpiresAt: expiresAt,
	}, nil
}

// generateCode produces a zero-padded random numeric code
func generateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
