package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mittalrohan/kirana/internal/pkg/constants"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// GetGuestCart retrieves the guest cart for an anonymous session.
// Returns nil without error when no cart exists; absence is
// expected-path, not a failure.
func (r *SessionRepo) GetGuestCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	val, err := r.redisClient.GetClient().Get(ctx, fmt.Sprintf(constants.KeyGuestCart, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest cart: %w", err)
	}

	return &cart, nil
}

// SaveGuestCart stores the guest cart for an anonymous session
func (r *SessionRepo) SaveGuestCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal guest cart: %w", err)
	}

	if err := r.redisClient.GetClient().Set(ctx, fmt.Sprintf(constants.KeyGuestCart, sessionID), cartJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to store guest cart in Redis: %w", err)
	}

	return nil
}

// DeleteGuestCart removes the guest cart. Deletion is the completion
// marker of a merge.
func (r *SessionRepo) DeleteGuestCart(ctx context.Context, sessionID string) error {
	if err := r.redisClient.GetClient().Del(ctx, fmt.Sprintf(constants.KeyGuestCart, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete guest cart: %w", err)
	}
	return nil
}

// GetUserCart retrieves the persistent cart for a subject. Returns an
// empty cart when none was stored yet.
func (r *SessionRepo) GetUserCart(ctx context.Context, subjectID uuid.UUID) (*models.Cart, error) {
	query := `
		SELECT items, updated_at
		FROM user_carts
		WHERE subject_id = $1
	`

	var itemsJSON []byte
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, subjectID).Scan(&itemsJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Cart{Items: []models.CartItem{}}, nil
		}
		return nil, fmt.Errorf("failed to get user cart: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user cart: %w", err)
	}

	return &models.Cart{Items: items, UpdatedAt: updatedAt}, nil
}

// MergeIntoUserCart folds guest items into the user cart under a row
// lock, so two near-simultaneous merges for the same subject cannot
// interleave their read-modify-write cycles.
func (r *SessionRepo) MergeIntoUserCart(ctx context.Context, subjectID uuid.UUID, guest *models.Cart) (*models.Cart, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// FOR UPDATE cannot lock a row that does not exist, so seed an empty
	// cart first; without it two first-time merges would both read "no
	// cart" and the later write would erase the earlier one
	seed := `
		INSERT INTO user_carts (subject_id, items, updated_at)
		VALUES ($1, '[]'::jsonb, $2)
		ON CONFLICT (subject_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, seed, subjectID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to seed user cart: %w", err)
	}

	cart := &models.Cart{Items: []models.CartItem{}}

	var itemsJSON []byte
	err = tx.QueryRowContext(ctx, `SELECT items FROM user_carts WHERE subject_id = $1 FOR UPDATE`, subjectID).Scan(&itemsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user cart: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user cart: %w", err)
	}

	cart.Merge(guest)
	cart.UpdatedAt = time.Now()

	mergedJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged cart: %w", err)
	}

	query := `
		UPDATE user_carts
		SET items = $2, updated_at = $3
		WHERE subject_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, subjectID, mergedJSON, cart.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to persist merged cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merged cart: %w", err)
	}

	return cart, nil
}
