package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/rueidis"

	"task-match-service.com/task-match-service/internal/scoring"
)

type RedisRankCache struct {
	client    rueidis.Client
	genKey    string
	keyPrefix string
}

func NewRedisRankCache(client rueidis.Client, generationKey, keyPrefix string) *RedisRankCache {
	return &RedisRankCache{
		client:    client,
		genKey:    generationKey,
		keyPrefix: keyPrefix,
	}
}

type cachedRanking struct {
	Generation int64                `json:"generation"`
	Ranked     []scoring.RankedTask `json:"ranked"`
}

func (c *RedisRankCache) Generation(ctx context.Context) (int64, error) {
	cmd := c.client.B().Get().Key(c.genKey).Build()
	result := c.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}
		return 0, err
	}

	raw, err := result.ToString()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(raw, 10, 64)
}

func (c *RedisRankCache) BumpGeneration(ctx context.Context) error {
	cmd := c.client.B().Incr().Key(c.genKey).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisRankCache) Get(ctx context.Context, userID string, generation int64) ([]scoring.RankedTask, bool, error) {
	cmd := c.client.B().Get().Key(c.userKey(userID)).Build()
	result := c.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	raw, err := result.AsBytes()
	if err != nil {
		return nil, false, err
	}

	var entry cachedRanking
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, err
	}

	if entry.Generation != generation {
		return nil, false, nil
	}

	return entry.Ranked, true, nil
}

func (c *RedisRankCache) Set(ctx context.Context, userID string, generation int64, ranked []scoring.RankedTask, ttl time.Duration) error {
	raw, err := json.Marshal(cachedRanking{Generation: generation, Ranked: ranked})
	if err != nil {
		return err
	}

	cmd := c.client.B().Set().Key(c.userKey(userID)).Value(string(raw)).
		Ex(ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisRankCache) Invalidate(ctx context.Context, userID string) error {
	cmd := c.client.B().Del().Key(c.userKey(userID)).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisRankCache) userKey(userID string) string {
	return c.keyPrefix + ":" + userID
}
