package player

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
	playerKeyPrefix      = "player:"        // player:<gameID>:<identity key> -> record JSON
	gamePlayersKeyPrefix = "game_players:"  // set of identity keys per game
	acceptedKeyPrefix    = "game_accepted:" // set of accepted identity keys per game
	waitlistKeyPrefix    = "game_waitlist:" // zset of waitlist-class identity keys, scored by creation time

	// How many times the capacity-gated accept retries a failed optimistic
	// transaction before giving up
	acceptMaxRetries = 5
)

var (
	// ErrRecordNotFound is returned when no record exists for the game and identity
	ErrRecordNotFound = errors.New("admission record not found")

	// ErrDuplicateRecord is returned when a record already exists for the game and identity
	ErrDuplicateRecord = errors.New("admission record already exists")

	// ErrNotOnWaitlist is returned when a rank is requested for a record that
	// is not in the waitlist class
	ErrNotOnWaitlist = errors.New("player is not on the waitlist")
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func recordKey(gameID string, identity models.Identity) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, gameID, identity.Key())
}

// indexRecord queues the status-index writes for a record on the pipeline.
// Every write path goes through here so the accepted set and waitlist zset
// always agree with the record's status.
func indexRecord(ctx context.Context, pipe redis.Pipeliner, p *models.Player) {
	acceptedKey := acceptedKeyPrefix + p.GameID
	waitlistKey := waitlistKeyPrefix + p.GameID
	member := p.Identity.Key()

	pipe.SAdd(ctx, gamePlayersKeyPrefix+p.GameID, member)

	switch {
	case p.Status == models.PlayerStatusAccepted:
		pipe.SAdd(ctx, acceptedKey, member)
		pipe.ZRem(ctx, waitlistKey, member)
	case p.Status.IsWaitlistClass():
		pipe.SRem(ctx, acceptedKey, member)
		pipe.ZAdd(ctx, waitlistKey, redis.Z{
			Score:  float64(p.CreatedAt.UnixNano()),
			Member: member,
		})
	default:
		pipe.SRem(ctx, acceptedKey, member)
		pipe.ZRem(ctx, waitlistKey, member)
	}
}

// CreateRecord persists a new record, enforcing one record per (game, identity)
func (r *redisRepository) CreateRecord(ctx context.Context, input *CreateRecordInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player
	if p.GameID == "" || p.Identity.IsZero() {
		return errors.New("player game ID and identity cannot be empty")
	}

	// Marshal the record to JSON
	playerJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// SetNX is the uniqueness gate: only one writer can create the record
	set, err := r.client.SetNX(ctx, recordKey(p.GameID, p.Identity), playerJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create player record: %w", err)
	}
	if !set {
		return ErrDuplicateRecord
	}

	// Index the record by status
	pipe := r.client.Pipeline()
	indexRecord(ctx, pipe, p)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index player record: %w", err)
	}

	return nil
}

// GetRecord retrieves the record for a game and identity
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.Player, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, recordKey(input.GameID, input.Identity)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get player record: %w", err)
	}

	var p models.Player
	if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player record: %w", err)
	}

	return &p, nil
}

// ListRecords retrieves all records for a game
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get all identity keys in the game
	members, err := r.client.SMembers(ctx, gamePlayersKeyPrefix+input.GameID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player identities for game: %w", err)
	}

	if len(members) == 0 {
		return &ListRecordsOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all records using a pipeline
	pipe := r.client.Pipeline()
	recordCommands := make(map[string]*redis.StringCmd)

	for _, member := range members {
		key := fmt.Sprintf("%s%s:%s", playerKeyPrefix, input.GameID, member)
		recordCommands[member] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get player records: %w", err)
	}

	// Process the results
	players := make([]*models.Player, 0, len(members))
	for member, cmd := range recordCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between listing and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get player record %s: %w", member, err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player record %s: %w", member, err)
		}

		players = append(players, &p)
	}

	return &ListRecordsOutput{
		Players: players,
	}, nil
}

// UpdateRecord rewrites an existing record and its status indexes
func (r *redisRepository) UpdateRecord(ctx context.Context, input *UpdateRecordInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player

	// The record must already exist
	exists, err := r.client.Exists(ctx, recordKey(p.GameID, p.Identity)).Result()
	if err != nil {
		return fmt.Errorf("failed to check player record: %w", err)
	}
	if exists == 0 {
		return ErrRecordNotFound
	}

	playerJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(p.GameID, p.Identity), playerJSON, 0)
	indexRecord(ctx, pipe, p)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player record: %w", err)
	}

	return nil
}

// DeleteRecord removes a record and its index entries
func (r *redisRepository) DeleteRecord(ctx context.Context, input *DeleteRecordInput) error {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return errors.New("input, game ID and identity cannot be empty")
	}

	// Verify the record exists so callers get a not-found error
	if _, err := r.GetRecord(ctx, &GetRecordInput{
		GameID:   input.GameID,
		Identity: input.Identity,
	}); err != nil {
		return err
	}

	member := input.Identity.Key()

	pipe := r.client.Pipeline()
	pipe.Del(ctx, recordKey(input.GameID, input.Identity))
	pipe.SRem(ctx, gamePlayersKeyPrefix+input.GameID, member)
	pipe.SRem(ctx, acceptedKeyPrefix+input.GameID, member)
	pipe.ZRem(ctx, waitlistKeyPrefix+input.GameID, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player record: %w", err)
	}

	return nil
}

// CountAccepted returns the number of accepted players in a game
func (r *redisRepository) CountAccepted(ctx context.Context, input *CountAcceptedInput) (int, error) {
	if input == nil || input.GameID == "" {
		return 0, errors.New("input and game ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, acceptedKeyPrefix+input.GameID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count accepted players: %w", err)
	}

	return int(count), nil
}

// AcceptIfUnderCapacity atomically seats the record if a seat is free,
// otherwise moves it to the waitlist. The decision and the write happen in
// one optimistic transaction watching the accepted index, so two racing
// accepts cannot both take the last seat.
func (r *redisRepository) AcceptIfUnderCapacity(ctx context.Context, input *AcceptIfUnderCapacityInput) (*AcceptIfUnderCapacityOutput, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return nil, errors.New("input, game ID and identity cannot be empty")
	}

	acceptedKey := acceptedKeyPrefix + input.GameID
	key := recordKey(input.GameID, input.Identity)

	var status models.PlayerStatus

	txf := func(tx *redis.Tx) error {
		playerJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrRecordNotFound
			}
			return fmt.Errorf("failed to get player record: %w", err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return fmt.Errorf("failed to unmarshal player record: %w", err)
		}

		count, err := tx.SCard(ctx, acceptedKey).Result()
		if err != nil {
			return fmt.Errorf("failed to count accepted players: %w", err)
		}

		// A record that is already seated keeps its seat
		if p.Status == models.PlayerStatusAccepted {
			status = models.PlayerStatusAccepted
			return nil
		}

		if input.Capacity <= 0 || int(count) < input.Capacity {
			status = models.PlayerStatusAccepted
		} else {
			status = models.PlayerStatusWaitlist
		}

		p.Status = status
		p.UpdatedAt = time.Now()

		updatedJSON, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			indexRecord(ctx, pipe, &p)
			return nil
		})
		return err
	}

	// Retry when a concurrent writer touches the watched keys
	for i := 0; i < acceptMaxRetries; i++ {
		err := r.client.Watch(ctx, txf, acceptedKey, key)
		if err == nil {
			return &AcceptIfUnderCapacityOutput{Status: status}, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to accept player after %d attempts: %w", acceptMaxRetries, redis.TxFailedErr)
}

// WaitlistRank returns the 1-based position among waitlist-class records
func (r *redisRepository) WaitlistRank(ctx context.Context, input *WaitlistRankInput) (int, error) {
	if input == nil || input.GameID == "" || input.Identity.IsZero() {
		return 0, errors.New("input, game ID and identity cannot be empty")
	}

	rank, err := r.client.ZRank(ctx, waitlistKeyPrefix+input.GameID, input.Identity.Key()).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrNotOnWaitlist
		}
		return 0, fmt.Errorf("failed to get waitlist rank: %w", err)
	}

	return int(rank) + 1, nil
}

// EarliestWaitlisted returns the earliest-created record with status waitlist,
// or nil if no promotable record exists. Records with status
// waitlist_requested are skipped: they still need the host's answer.
func (r *redisRepository) EarliestWaitlisted(ctx context.Context, input *EarliestWaitlistedInput) (*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	members, err := r.client.ZRange(ctx, waitlistKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist: %w", err)
	}

	for _, member := range members {
		playerJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s:%s", playerKeyPrefix, input.GameID, member)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player record %s: %w", member, err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player record %s: %w", member, err)
		}

		if p.Status == models.PlayerStatusWaitlist {
			return &p, nil
		}
	}

	return nil, nil
}
