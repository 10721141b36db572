package guest_profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Edaad/allin-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	guestKeyPrefix      = "guest:"       // guest:<id> -> profile JSON
	guestPhoneKeyPrefix = "guest_phone:" // guest_phone:<phone> -> guest ID
)

var (
	// ErrGuestNotFound is returned when a guest profile is not found
	ErrGuestNotFound = errors.New("guest profile not found")

	// ErrDuplicateGuest is returned when a profile already exists for the phone number
	ErrDuplicateGuest = errors.New("guest profile already exists for this phone number")
)

// Config holds configuration for the Redis guest profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guest profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGuest persists a new guest profile, enforcing one profile per phone
func (r *redisRepository) CreateGuest(ctx context.Context, input *CreateGuestInput) error {
	if input == nil || input.Guest == nil {
		return errors.New("input and guest cannot be nil")
	}

	guest := input.Guest
	if guest.ID == "" || guest.Phone == "" {
		return errors.New("guest ID and phone cannot be empty")
	}

	guestJSON, err := json.Marshal(guest)
	if err != nil {
		return fmt.Errorf("failed to marshal guest: %w", err)
	}

	// SetNX on the phone index is the uniqueness gate. Both writes ride one
	// MULTI/EXEC so the phone index can never point at a missing profile.
	phoneKey := guestPhoneKeyPrefix + guest.Phone
	var claimed *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		claimed = pipe.SetNX(ctx, phoneKey, guest.ID, 0)
		pipe.Set(ctx, guestKeyPrefix+guest.ID, guestJSON, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save guest: %w", err)
	}

	if !claimed.Val() {
		// Lost the phone race: discard the profile written alongside the
		// no-op SetNX. The index still points at the winner.
		r.client.Del(ctx, guestKeyPrefix+guest.ID)
		return ErrDuplicateGuest
	}

	return nil
}

// GetGuest retrieves a guest profile by ID
func (r *redisRepository) GetGuest(ctx context.Context, input *GetGuestInput) (*models.GuestProfile, error) {
	if input == nil || input.GuestID == "" {
		return nil, errors.New("input and guest ID cannot be empty")
	}

	guestJSON, err := r.client.Get(ctx, guestKeyPrefix+input.GuestID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	var guest models.GuestProfile
	if err := json.Unmarshal([]byte(guestJSON), &guest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest: %w", err)
	}

	return &guest, nil
}

// GetGuestByPhone retrieves a guest profile by phone number
func (r *redisRepository) GetGuestByPhone(ctx context.Context, input *GetGuestByPhoneInput) (*models.GuestProfile, error) {
	if input == nil || input.Phone == "" {
		return nil, errors.New("input and phone cannot be empty")
	}

	guestID, err := r.client.Get(ctx, guestPhoneKeyPrefix+input.Phone).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to get guest ID for phone: %w", err)
	}

	return r.GetGuest(ctx, &GetGuestInput{
		GuestID: guestID,
	})
}

// UpdateGuest rewrites an existing guest profile
func (r *redisRepository) UpdateGuest(ctx context.Context, input *UpdateGuestInput) error {
	if input == nil || input.Guest == nil {
		return errors.New("input and guest cannot be nil")
	}

	guest := input.Guest

	exists, err := r.client.Exists(ctx, guestKeyPrefix+guest.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check guest: %w", err)
	}
	if exists == 0 {
		return ErrGuestNotFound
	}

	guestJSON, err := json.Marshal(guest)
	if err != nil {
		return fmt.Errorf("failed to marshal guest: %w", err)
	}

	if err := r.client.Set(ctx, guestKeyPrefix+guest.ID, guestJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}

	return nil
}

// UpsertJoinHistory sets the guest's join-history entry for a game
func (r *redisRepository) UpsertJoinHistory(ctx context.Context, input *UpsertJoinHistoryInput) error {
	if input == nil || input.GuestID == "" || input.GameID == "" {
		return errors.New("input, guest ID and game ID cannot be empty")
	}

	guest, err := r.GetGuest(ctx, &GetGuestInput{GuestID: input.GuestID})
	if err != nil {
		return err
	}

	updated := false
	for i := range guest.JoinHistory {
		if guest.JoinHistory[i].GameID == input.GameID {
			guest.JoinHistory[i].Status = input.Status
			updated = true
			break
		}
	}
	if !updated {
		guest.JoinHistory = append(guest.JoinHistory, models.JoinHistoryEntry{
			GameID: input.GameID,
			Status: input.Status,
		})
	}
	guest.UpdatedAt = time.Now()

	return r.UpdateGuest(ctx, &UpdateGuestInput{Guest: guest})
}

// RemoveJoinHistory deletes the guest's join-history entry for a game
func (r *redisRepository) RemoveJoinHistory(ctx context.Context, input *RemoveJoinHistoryInput) error {
	if input == nil || input.GuestID == "" || input.GameID == "" {
		return errors.New("input, guest ID and game ID cannot be empty")
	}

	guest, err := r.GetGuest(ctx, &GetGuestInput{GuestID: input.GuestID})
	if err != nil {
		return err
	}

	history := guest.JoinHistory[:0]
	for _, entry := range guest.JoinHistory {
		if entry.GameID != input.GameID {
			history = append(history, entry)
		}
	}
	guest.JoinHistory = history
	guest.UpdatedAt = time.Now()

	return r.UpdateGuest(ctx, &UpdateGuestInput{Guest: guest})
}
