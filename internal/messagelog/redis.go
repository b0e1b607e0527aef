package messagelog

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/roguelike-api/internal/redis"
)

const (
	messageLogKeyPrefix = "messagelog:"

	errSessionIDEmpty = "session ID cannot be empty"
	errMessageNil     = "message cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis message-log repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed message-log repository. Each
// session's history lives in one list keyed by session ID.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Message == nil {
		return nil, errors.InvalidArgument(errMessageNil)
	}

	entry := &Entry{
		SessionID: input.SessionID,
		Message:   *input.Message,
		At:        r.clock.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message entry")
	}

	key := messageLogKeyPrefix + input.SessionID
	if err := r.client.RPush(ctx, key, data).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to append message entry")
	}

	return &AppendOutput{Entry: entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	key := messageLogKeyPrefix + input.SessionID
	raw, err := r.client.LRange(ctx, key, start, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list message entries")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal message entry")
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := messageLogKeyPrefix + input.SessionID
	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear message entries")
	}

	return &ClearOutput{Removed: removed}, nil
}
