package session

import (
	"context"

	"github.com/mittalrohan/kirana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mittalrohan/kirana/services/session SessionGW

// SessionGW covers the service's outbound collaborators: the
// human-verification gate and the event stream for delivery workers.
type SessionGW interface {
	VerifyCaptcha(ctx context.Context, captchaToken, remoteIP string) error
	PublishCodeDispatch(ctx context.Context, event models.CodeDispatchEvent) error
	PublishUserRegistered(ctx context.Context, event models.UserRegisteredEvent) error
	PublishCartMerged(ctx context.Context, event models.CartMergedEvent) error
}
