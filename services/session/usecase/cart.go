package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// GetGuestCart returns the guest cart for an anonymous session, or an
// empty cart when none exists yet.
func (u *SessionUC) GetGuestCart(ctx context.Context, guestSessionID string) (*models.Cart, error) {
	cart, err := u.repo.GetGuestCart(ctx, guestSessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{Items: []models.CartItem{}}
	}
	return cart, nil
}

// AddGuestItem appends an item to the guest cart, bumping the quantity
// of an existing line with the same item ref.
func (u *SessionUC) AddGuestItem(ctx context.Context, guestSessionID string, item models.CartItem) (*models.Cart, error) {
	if item.ItemRef == "" || item.Quantity <= 0 {
		return nil, fmt.Errorf("item_ref and a positive quantity are required")
	}

	cart, err := u.GetGuestCart(ctx, guestSessionID)
	if err != nil {
		return nil, err
	}

	cart.Merge(&models.Cart{Items: []models.CartItem{item}})
	cart.UpdatedAt = time.Now()

	if err := u.repo.SaveGuestCart(ctx, guestSessionID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// GetUserCart returns the persistent cart for a subject. When a guest
// session id is supplied, any pending merge is completed first; this
// is the lazy retry path for merges that failed during bootstrap.
func (u *SessionUC) GetUserCart(ctx context.Context, subjectID, guestSessionID string) (*models.Cart, error) {
	if guestSessionID != "" {
		cart, err := u.MergeGuestCart(ctx, guestSessionID, subjectID)
		if err == nil {
			return cart, nil
		}
		logger.Warn("Lazy guest cart merge failed",
			logger.Err(err),
			logger.String("subject_id", subjectID))
	}

	id, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject id: %w", err)
	}

	return u.repo.GetUserCart(ctx, id)
}

// MergeGuestCart folds the guest cart into the user cart at most once
// per anonymous-session-to-user transition. Guest cart deletion is the
// completion marker: existence is re-checked first, so a duplicated
// trigger after a completed merge is a no-op rather than a
// double-count. The window between persisting the merged cart and
// deleting the guest cart is accepted; the stores offer no cross-store
// transaction.
func (u *SessionUC) MergeGuestCart(ctx context.Context, guestSessionID, subjectID string) (*models.Cart, error) {
	id, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject id: %w", err)
	}

	guest, err := u.repo.GetGuestCart(ctx, guestSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest cart: %w", err)
	}
	if guest == nil || len(guest.Items) == 0 {
		// Nothing to merge, expected path for returning visitors
		return u.repo.GetUserCart(ctx, id)
	}

	merged, err := u.repo.MergeIntoUserCart(ctx, id, guest)
	if err != nil {
		return nil, fmt.Errorf("failed to merge carts: %w", err)
	}

	if err := u.repo.DeleteGuestCart(ctx, guestSessionID); err != nil {
		return nil, fmt.Errorf("failed to delete guest cart: %w", err)
	}

	if err := u.gw.PublishCartMerged(ctx, models.CartMergedEvent{
		SubjectID:      subjectID,
		GuestSessionID: guestSessionID,
		ItemCount:      len(merged.Items),
		MergedAt:       time.Now(),
	}); err != nil {
		logger.Warn("Failed to publish cart merged event",
			logger.Err(err),
			logger.String("subject_id", subjectID))
	}

	logger.Info("Guest cart merged",
		logger.String("subject_id", subjectID),
		logger.Int("items", len(merged.Items)))

	return merged, nil
}
