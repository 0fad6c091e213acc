package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/database"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

func setupRedisRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisClient := &database.RedisClient{Client: client}

	cfg := &models.Config{
		OTP: models.OTPConfig{
			CodeLength:      6,
			ExpiryMinutes:   5,
			MaxAttempts:     3,
			CooldownSeconds: 60,
		},
	}

	return NewSessionRepo(cfg, nil, redisClient), mr
}

func newChallenge(ref, destination string) *models.Challenge {
	now := time.Now()
	return &models.Challenge{
		Ref:          ref,
		Destination:  destination,
		Channel:      models.ChannelSMS,
		CodeHash:     "$2a$04$fakehashfakehashfakehash",
		AttemptsLeft: 3,
		CreatedAt:    now,
		ExpiresAt:    now.Add(5 * time.Minute),
	}
}

func TestChallengeRoundTrip(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	challenge := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, challenge))

	got, err := repo.GetChallenge(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, challenge.Ref, got.Ref)
	assert.Equal(t, challenge.Destination, got.Destination)
	assert.Equal(t, 3, got.AttemptsLeft)
}

func TestCreateChallenge_SupersedesLiveChallenge(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	first := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, first))

	second := newChallenge("ref-2", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, second))

	// The superseded ref is gone, only the newest challenge is live
	_, err := repo.GetChallenge(ctx, "ref-1")
	assert.ErrorIs(t, err, apperrors.ErrChallengeExpired)

	got, err := repo.GetChallenge(ctx, "ref-2")
	require.NoError(t, err)
	assert.Equal(t, "ref-2", got.Ref)
}

func TestGetChallenge_ExpiredByTTL(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	challenge := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, challenge))

	mr.FastForward(6 * time.Minute)

	_, err := repo.GetChallenge(ctx, "ref-1")
	assert.ErrorIs(t, err, apperrors.ErrChallengeExpired)
}

func TestConsumeChallenge_LeavesTombstone(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	challenge := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, challenge))
	require.NoError(t, repo.ConsumeChallenge(ctx, challenge))

	// Replay of a consumed ref is distinguishable from expiry
	_, err := repo.GetChallenge(ctx, "ref-1")
	assert.ErrorIs(t, err, apperrors.ErrChallengeConsumed)
}

func TestConsumeChallenge_FreesDestination(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	challenge := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, challenge))
	require.NoError(t, repo.ConsumeChallenge(ctx, challenge))

	// A new challenge for the destination works immediately
	require.NoError(t, repo.CreateChallenge(ctx, newChallenge("ref-2", "+919876543210")))

	got, err := repo.GetChallenge(ctx, "ref-2")
	require.NoError(t, err)
	assert.Equal(t, "ref-2", got.Ref)
}

func TestDecrementChallengeAttempts(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	challenge := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, challenge))

	// Counter is seeded alongside the challenge and burns down one per call
	for _, want := range []int{2, 1, 0} {
		remaining, err := repo.DecrementChallengeAttempts(ctx, "ref-1")
		require.NoError(t, err)
		assert.Equal(t, want, remaining)
	}

	// Past zero the budget stays spent, it never goes negative
	remaining, err := repo.DecrementChallengeAttempts(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestDecrementChallengeAttempts_CounterClearedOnSupersede(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	first := newChallenge("ref-1", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, first))

	_, err := repo.DecrementChallengeAttempts(ctx, "ref-1")
	require.NoError(t, err)

	// A fresh challenge for the same destination gets a full budget
	second := newChallenge("ref-2", "+919876543210")
	require.NoError(t, repo.CreateChallenge(ctx, second))

	remaining, err := repo.DecrementChallengeAttempts(ctx, "ref-2")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestReserveCooldown(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	wait, ok, err := repo.ReserveCooldown(ctx, "+919876543210", 60*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, wait)

	// Second reservation within the window is refused with the remaining wait
	wait, ok, err = repo.ReserveCooldown(ctx, "+919876543210", 60*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))

	mr.FastForward(61 * time.Second)

	_, ok, err = repo.ReserveCooldown(ctx, "+919876543210", 60*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGuestCartRoundTrip(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	missing, err := repo.GetGuestCart(ctx, "guest-42")
	require.NoError(t, err)
	assert.Nil(t, missing)

	cart := &models.Cart{
		Items:     []models.CartItem{{ItemRef: "sku-A", Quantity: 2}},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.SaveGuestCart(ctx, "guest-42", cart))

	got, err := repo.GetGuestCart(ctx, "guest-42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cart.Items, got.Items)

	require.NoError(t, repo.DeleteGuestCart(ctx, "guest-42"))

	gone, err := repo.GetGuestCart(ctx, "guest-42")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
