package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mittalrohan/kirana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mittalrohan/kirana/services/session SessionRepo

// SessionRepo is the persistence interface for challenges, profiles and
// carts
type SessionRepo interface {
	// challenge lifecycle (Redis)
	CreateChallenge(ctx context.Context, challenge *models.Challenge) error
	GetChallenge(ctx context.Context, ref string) (*models.Challenge, error)
	DecrementChallengeAttempts(ctx context.Context, ref string) (int, error)
	ConsumeChallenge(ctx context.Context, challenge *models.Challenge) error
	ReserveCooldown(ctx context.Context, destination string, period time.Duration) (time.Duration, bool, error)

	// profile store (PostgreSQL)
	UpsertProfile(ctx context.Context, subjectID uuid.UUID, phone, email, role string, now time.Time) (*models.Profile, bool, error)
	GetProfile(ctx context.Context, subjectID uuid.UUID) (*models.Profile, error)
	GetSubjectByContact(ctx context.Context, phone, email string) (uuid.UUID, bool, error)
	UpdateRole(ctx context.Context, subjectID uuid.UUID, role string) error

	// carts
	GetGuestCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveGuestCart(ctx context.Context, sessionID string, cart *models.Cart) error
	DeleteGuestCart(ctx context.Context, sessionID string) error
	GetUserCart(ctx context.Context, subjectID uuid.UUID) (*models.Cart, error)
	MergeIntoUserCart(ctx context.Context, subjectID uuid.UUID, guest *models.Cart) (*models.Cart, error)
}
