package session

import (
	"context"

	"github.com/mittalrohan/kirana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mittalrohan/kirana/services/session SessionUC

// SessionUC is the session bootstrap usecase interface
type SessionUC interface {
	// OTP verification
	RequestCode(ctx context.Context, destination, captchaToken, remoteIP string) (*models.RequestCodeResponse, error)
	ConfirmCode(ctx context.Context, challengeRef, code string) (*models.AssertionResponse, error)

	// session bootstrap
	Bootstrap(ctx context.Context, assertion, guestSessionID string) (*models.BootstrapResult, error)

	// carts
	GetGuestCart(ctx context.Context, guestSessionID string) (*models.Cart, error)
	AddGuestItem(ctx context.Context, guestSessionID string, item models.CartItem) (*models.Cart, error)
	GetUserCart(ctx context.Context, subjectID, guestSessionID string) (*models.Cart, error)
	MergeGuestCart(ctx context.Context, guestSessionID, subjectID string) (*models.Cart, error)

	// administrative claims assignment
	AssignRole(ctx context.Context, subjectID, role string) error
}
