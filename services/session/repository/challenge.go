package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/constants"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// CreateChallenge stores a challenge in Redis with a TTL matching its
// expiry and supersedes any live challenge for the same destination.
func (r *SessionRepo) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	client := r.redisClient.GetClient()
	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("challenge already expired")
	}

	destKey := fmt.Sprintf(constants.KeyChallengeDest, challenge.Destination)

	// At most one live challenge per destination: drop the superseded one
	oldRef, err := client.Get(ctx, destKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to check live challenge: %w", err)
	}
	if err == nil && oldRef != "" {
		if err := client.Del(ctx,
			fmt.Sprintf(constants.KeyChallenge, oldRef),
			fmt.Sprintf(constants.KeyChallengeAttempts, oldRef),
		).Err(); err != nil {
			return fmt.Errorf("failed to supersede challenge: %w", err)
		}
	}

	challengeJSON, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	if err := client.Set(ctx, fmt.Sprintf(constants.KeyChallenge, challenge.Ref), challengeJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge in Redis: %w", err)
	}
	if err := client.Set(ctx, destKey, challenge.Ref, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge pointer in Redis: %w", err)
	}

	// The attempt budget lives in its own counter so wrong-code attempts
	// can burn it down with an atomic DECR
	attemptsKey := fmt.Sprintf(constants.KeyChallengeAttempts, challenge.Ref)
	if err := client.Set(ctx, attemptsKey, challenge.AttemptsLeft, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store attempt counter in Redis: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ref. A consumed ref yields
// ErrChallengeConsumed, a missing one ErrChallengeExpired; the caller
// treats those differently.
func (r *SessionRepo) GetChallenge(ctx context.Context, ref string) (*models.Challenge, error) {
	client := r.redisClient.GetClient()

	consumed, err := client.Exists(ctx, fmt.Sprintf(constants.KeyChallengeUsed, ref)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check challenge tombstone: %w", err)
	}
	if consumed > 0 {
		return nil, apperrors.ErrChallengeConsumed
	}

	val, err := client.Get(ctx, fmt.Sprintf(constants.KeyChallenge, ref)).Result()
	if err == redis.Nil {
		return nil, apperrors.ErrChallengeExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.Challenge
	if err := json.Unmarshal([]byte(val), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// DecrementChallengeAttempts burns one attempt off the challenge's
// budget and returns the remaining count. DECR is atomic, so racing
// wrong-code submissions cannot stretch the budget past its limit.
func (r *SessionRepo) DecrementChallengeAttempts(ctx context.Context, ref string) (int, error) {
	client := r.redisClient.GetClient()
	key := fmt.Sprintf(constants.KeyChallengeAttempts, ref)

	remaining, err := client.Decr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to decrement attempt counter: %w", err)
	}
	if remaining < 0 {
		// Counter expired or the budget was already spent
		return 0, nil
	}
	return int(remaining), nil
}

// ConsumeChallenge removes a challenge and leaves a tombstone so that a
// replay of the same ref is distinguishable from plain expiry.
func (r *SessionRepo) ConsumeChallenge(ctx context.Context, challenge *models.Challenge) error {
	client := r.redisClient.GetClient()

	if err := client.Del(ctx,
		fmt.Sprintf(constants.KeyChallenge, challenge.Ref),
		fmt.Sprintf(constants.KeyChallengeDest, challenge.Destination),
		fmt.Sprintf(constants.KeyChallengeAttempts, challenge.Ref),
	).Err(); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	tombstoneTTL := time.Duration(r.cfg.OTP.ExpiryMinutes) * time.Minute
	if err := client.Set(ctx, fmt.Sprintf(constants.KeyChallengeUsed, challenge.Ref), "1", tombstoneTTL).Err(); err != nil {
		return fmt.Errorf("failed to write challenge tombstone: %w", err)
	}

	return nil
}

// ReserveCooldown attempts to claim the per-destination cooldown slot.
// Returns the remaining wait and false when a cooldown is already
// running.
func (r *SessionRepo) ReserveCooldown(ctx context.Context, destination string, period time.Duration) (time.Duration, bool, error) {
	client := r.redisClient.GetClient()
	key := fmt.Sprintf(constants.KeyOTPCooldown, destination)

	ok, err := client.SetNX(ctx, key, "1", period).Result()
	if err != nil {
		return 0, false, fmt.Errorf("failed to reserve cooldown: %w", err)
	}
	if ok {
		return 0, true, nil
	}

	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read cooldown TTL: %w", err)
	}
	return ttl, false, nil
}
