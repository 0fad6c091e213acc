package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// UpsertProfile atomically creates or refreshes the profile for a
// subject id in a single statement, so concurrent bootstraps for the
// same subject cannot create two rows. Contact fields are filled only
// when previously empty; a stored contact is never overwritten.
// Returns the resulting profile and whether it was created by this
// call.
func (r *SessionRepo) UpsertProfile(ctx context.Context, subjectID uuid.UUID, phone, email, role string, now time.Time) (*models.Profile, bool, error) {
	// xmax = 0 holds only for a freshly inserted row, the conflict path
	// rewrites the row and stamps a nonzero xmax
	query := `
		INSERT INTO profiles (subject_id, phone, email, role, created_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (subject_id) DO UPDATE SET
			last_login_at = EXCLUDED.last_login_at,
			phone = CASE WHEN profiles.phone = '' THEN EXCLUDED.phone ELSE profiles.phone END,
			email = CASE WHEN profiles.email = '' THEN EXCLUDED.email ELSE profiles.email END
		RETURNING subject_id, phone, email, role, created_at, last_login_at, (xmax = 0) AS is_new
	`

	var row struct {
		models.Profile
		IsNew bool `db:"is_new"`
	}
	err := r.db.QueryRowxContext(ctx, query, subjectID, phone, email, role, now).StructScan(&row)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &row.Profile, row.IsNew, nil
}

// GetProfile retrieves a profile by subject id
func (r *SessionRepo) GetProfile(ctx context.Context, subjectID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT subject_id, phone, email, role, created_at, last_login_at
		FROM profiles
		WHERE subject_id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// GetSubjectByContact finds the subject id already bound to a verified
// contact, keeping subject ids stable across logins and channels.
func (r *SessionRepo) GetSubjectByContact(ctx context.Context, phone, email string) (uuid.UUID, bool, error) {
	query := `
		SELECT subject_id
		FROM profiles
		WHERE ($1 <> '' AND phone = $1) OR ($2 <> '' AND email = $2)
		LIMIT 1
	`

	var subjectID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, phone, email).Scan(&subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to look up subject by contact: %w", err)
	}

	return subjectID, true, nil
}

// UpdateRole sets the role for a subject. Administrative operation,
// never part of ordinary bootstrap.
func (r *SessionRepo) UpdateRole(ctx context.Context, subjectID uuid.UUID, role string) error {
	query := `
		UPDATE profiles
		SET role = $2
		WHERE subject_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, subjectID, role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
