package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"citypulse/internal/errs"
	"citypulse/internal/model"
)

// RedisNewsStore persists news in Redis:
//   - news:item:<id> (String): JSON serialized item, no expiry
//   - news:all (Sorted Set): id -> recency score
//   - news:city:<city> (Sorted Set): per-city recency index, lazily created
type RedisNewsStore struct {
	rdb *redis.Client
}

func NewRedisNewsStore(rdb *redis.Client) *RedisNewsStore {
	return &RedisNewsStore{rdb: rdb}
}

const newsAllKey = "news:all"

func newsItemKey(id string) string {
	return fmt.Sprintf("news:item:%s", id)
}

func newsCityKey(city string) string {
	return fmt.Sprintf("news:city:%s", strings.ToLower(city))
}

func (s *RedisNewsStore) Save(ctx context.Context, item model.NewsItem) (model.NewsItem, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return model.NewsItem{}, errs.Infrastructure("marshal news", err)
	}
	score := recencyScore(item.Date)
	// Blob and both indexes refresh in one transaction; ZAdd on an existing
	// member updates its score instead of duplicating the entry.
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, newsItemKey(item.ID), b, 0)
		pipe.ZAdd(ctx, newsAllKey, redis.Z{Score: score, Member: item.ID})
		pipe.ZAdd(ctx, newsCityKey(item.City), redis.Z{Score: score, Member: item.ID})
		return nil
	})
	if err != nil {
		return model.NewsItem{}, errs.Infrastructure("save news", err)
	}
	return item, nil
}

func (s *RedisNewsStore) Latest(ctx context.Context, limit int) ([]model.NewsItem, error) {
	return s.latestFrom(ctx, newsAllKey, limit)
}

func (s *RedisNewsStore) LatestInCity(ctx context.Context, city string, limit int) ([]model.NewsItem, error) {
	return s.latestFrom(ctx, newsCityKey(city), limit)
}

func (s *RedisNewsStore) latestFrom(ctx context.Context, zkey string, limit int) ([]model.NewsItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := s.rdb.ZRevRange(ctx, zkey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errs.Infrastructure("range news index", err)
	}
	out := make([]model.NewsItem, 0, len(ids))
	for _, id := range ids {
		b, err := s.rdb.Get(ctx, newsItemKey(id)).Bytes()
		if err == redis.Nil {
			continue // index entry without a blob, skip
		}
		if err != nil {
			return nil, errs.Infrastructure("fetch news item", err)
		}
		var it model.NewsItem
		if err := json.Unmarshal(b, &it); err != nil {
			return nil, errs.Infrastructure("unmarshal news item", err)
		}
		out = append(out, it)
	}
	return out, nil
}
