package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/pkg/token"
)

// Bootstrap turns a verified identity assertion into an application
// session: it verifies the assertion, upserts the profile and issues a
// session token. Idempotent under retry, the same assertion replayed
// before expiry lands on the same profile row. A guest session id, if
// supplied, triggers a best-effort cart merge that never fails the
// login.
func (u *SessionUC) Bootstrap(ctx context.Context, assertion, guestSessionID string) (*models.BootstrapResult, error) {
	claims, err := token.VerifyAssertion(assertion, u.cfg)
	if err != nil {
		return nil, err
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	profile, isNew, err := u.repo.UpsertProfile(ctx, subjectID, claims.Phone, claims.Email, u.cfg.Auth.DefaultRole, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	if isNew {
		// Best effort: registration events feed downstream consumers,
		// losing one must not fail the login
		err := u.gw.PublishUserRegistered(ctx, models.UserRegisteredEvent{
			SubjectID: profile.SubjectID.String(),
			Phone:     profile.Phone,
			Email:     profile.Email,
			CreatedAt: profile.CreatedAt,
		})
		if err != nil {
			logger.Warn("Failed to publish registration event",
				logger.Err(err),
				logger.String("subject_id", profile.SubjectID.String()))
		}
	}

	sessionToken, expiresAt, err := token.GenerateSessionToken(profile.SubjectID.String(), profile.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if guestSessionID != "" {
		if _, err := u.MergeGuestCart(ctx, guestSessionID, profile.SubjectID.String()); err != nil {
			// The merge is retried lazily on next cart access
			logger.Warn("Guest cart merge failed during bootstrap",
				logger.Err(err),
				logger.String("subject_id", profile.SubjectID.String()))
		}
	}

	logger.Info("Session bootstrapped",
		logger.String("subject_id", profile.SubjectID.String()),
		logger.Bool("is_new_user", isNew))

	return &models.BootstrapResult{
		Profile:      profile,
		IsNewUser:    isNew,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// AssignRole is the administrative claims-assignment operation. It is
// never part of ordinary bootstrap.
func (u *SessionUC) AssignRole(ctx context.Context, subjectID, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}

	id, err := uuid.Parse(subjectID)
	if err != nil {
		return fmt.Errorf("invalid subject id: %w", err)
	}

	if err := u.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	logger.Info("Role assigned",
		logger.String("subject_id", subjectID),
		logger.String("role", role))

	return nil
}
