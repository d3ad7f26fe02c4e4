package worlds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-perception/internal/redis"
)

const (
	// Key patterns: world:{id}, world:{id}:revision and the worlds index set
	worldKeyPrefix = "world:"
	revisionSuffix = ":revision"
	indexKey       = "worlds"

	// a save retries when another save of the same world commits first
	maxPutAttempts = 10

	errWorldIDEmpty   = "world ID cannot be empty"
	errDefinitionNil  = "definition cannot be nil"
	errDefinitionNoID = "definition ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL expires worlds that are not saved again in time. Zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.Fieldf("ttl", "must not be negative, got %s", c.TTL)
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores the definition and bumps its revision. The revision is read
// and written under WATCH so concurrent saves never store a stale revision.
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Definition == nil {
		return nil, errors.InvalidArgument(errDefinitionNil)
	}
	if input.Definition.ID == "" {
		return nil, errors.InvalidArgument(errDefinitionNoID)
	}

	worldID := input.Definition.ID
	var record *Record
	save := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, revisionKey(worldID)).Int64()
		if err != nil && err != redis.Nil {
			return err
		}

		record = &Record{
			Definition: input.Definition,
			Revision:   current + 1,
			UpdatedAt:  r.clock.Now().UTC(),
		}
		data, err := json.Marshal(record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal world %s", worldID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, revisionKey(worldID), record.Revision, r.ttl)
			pipe.Set(ctx, worldKey(worldID), data, r.ttl)
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxPutAttempts; attempt++ {
		err = r.client.Watch(ctx, save, revisionKey(worldID))
		if err != redis.TxFailedErr {
			break
		}
	}
	if err == redis.TxFailedErr {
		return nil, errors.Newf(errors.CodeUnavailable, "world %s is being saved concurrently, try again", worldID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store world %s", worldID)
	}

	// the index lives in its own slot, so it is updated outside the transaction
	if err := r.client.SAdd(ctx, indexKey, worldID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index world %s", worldID)
	}

	return &PutOutput{Record: record}, nil
}

// Get loads the latest revision of a world
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	data, err := r.client.Get(ctx, worldKey(input.WorldID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world %s not found", input.WorldID)
		}
		return nil, errors.Wrapf(err, "failed to get world %s", input.WorldID)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world %s", input.WorldID)
	}

	return &GetOutput{Record: &record}, nil
}

// Delete removes the world, its revision counter and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	deleted, err := r.client.Del(ctx, worldKey(input.WorldID), revisionKey(input.WorldID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete world %s", input.WorldID)
	}
	if err := r.client.SRem(ctx, indexKey, input.WorldID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to unindex world %s", input.WorldID)
	}

	if deleted == 0 {
		return nil, errors.NotFoundf("world %s not found", input.WorldID)
	}

	return &DeleteOutput{}, nil
}

// List returns every indexed world that has not expired
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	// one EXISTS per key: world keys live in different cluster slots
	pipe := r.client.Pipeline()
	checks := make([]*redis.IntCmd, len(ids))
	for i, id := range ids {
		checks[i] = pipe.Exists(ctx, worldKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to check worlds")
	}

	live := make([]string, 0, len(ids))
	for i, id := range ids {
		if checks[i].Val() == 1 {
			live = append(live, id)
			continue
		}
		// expired; drop the stale index entry
		if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
			slog.Warn("Failed to prune expired world from index", "world_id", id, "error", err)
		}
	}

	sort.Strings(live)
	return &ListOutput{WorldIDs: live}, nil
}

// Keys hash on the world id so both keys of a world share a cluster slot
func worldKey(id string) string {
	return worldKeyPrefix + "{" + id + "}"
}

func revisionKey(id string) string {
	return worldKey(id) + revisionSuffix
}
