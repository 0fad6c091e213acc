package gateway

import (
	"context"
	"fmt"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/constants"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// PublishCodeDispatch hands a freshly issued code to the delivery
// workers. This publish sits on the critical path of requestCode, so it
// is retried with backoff and a final failure maps to the transient
// class.
func (g *SessionGW) PublishCodeDispatch(ctx context.Context, event models.CodeDispatchEvent) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicCodeDispatch, event)
	})
	if err != nil {
		return fmt.Errorf("%w: code dispatch publish failed: %v", apperrors.ErrProviderUnavailable, err)
	}
	return nil
}

// PublishUserRegistered announces the first sighting of a subject id.
// Best effort, the caller logs and moves on.
func (g *SessionGW) PublishUserRegistered(_ context.Context, event models.UserRegisteredEvent) error {
	return g.producer.Publish(constants.TopicUserRegistered, event)
}

// PublishCartMerged announces a completed guest-cart merge
func (g *SessionGW) PublishCartMerged(_ context.Context, event models.CartMergedEvent) error {
	return g.producer.Publish(constants.TopicCartMerged, event)
}
