package loadout

import (
	"context"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/remnantforge/builds-api/internal/errors"
	redisclient "github.com/remnantforge/builds-api/internal/redis"
)

const (
	loadoutKeyPrefix = "loadout:"

	// Error messages
	errUserIDEmpty  = "user ID cannot be empty"
	errBuildIDEmpty = "build ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed loadout repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func validateSlot(slot int32) error {
	if slot < 1 || slot > MaxSlots {
		return errors.OutOfRangef("slot must be between 1 and %d, got %d", MaxSlots, slot)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.BuildID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	key := loadoutKeyPrefix + input.UserID
	field := strconv.Itoa(int(input.Slot))

	previous, err := r.client.HGet(ctx, key, field).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read loadout slot")
	}

	if err := r.client.HSet(ctx, key, field, input.BuildID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set loadout slot")
	}

	return &SetOutput{Previous: previous}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	key := loadoutKeyPrefix + input.UserID
	field := strconv.Itoa(int(input.Slot))

	removed, err := r.client.HDel(ctx, key, field).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear loadout slot")
	}

	return &ClearOutput{Cleared: removed > 0}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := loadoutKeyPrefix + input.UserID
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list loadouts")
	}

	entries := make([]Entry, 0, len(fields))
	for field, buildID := range fields {
		slot, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Slot: int32(slot), BuildID: buildID})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slot < entries[j].Slot
	})

	return &ListOutput{Entries: entries}, nil
}
