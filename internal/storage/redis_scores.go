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

// RedisCityScoreStore persists city scores in Redis:
//   - cityscore:item:<city> (String): JSON serialized score, key lowercased
//   - cityscore:ranking (Sorted Set): city key -> total score, ascending reads
type RedisCityScoreStore struct {
	rdb *redis.Client
}

func NewRedisCityScoreStore(rdb *redis.Client) *RedisCityScoreStore {
	return &RedisCityScoreStore{rdb: rdb}
}

const scoreRankingKey = "cityscore:ranking"

func scoreItemKey(city string) string {
	return fmt.Sprintf("cityscore:item:%s", strings.ToLower(city))
}

func (s *RedisCityScoreStore) GetOrCreate(ctx context.Context, city, country string) (model.CityScore, error) {
	b, err := s.rdb.Get(ctx, scoreItemKey(city)).Bytes()
	if err == redis.Nil {
		return s.Save(ctx, model.NewCityScore(city, country))
	}
	if err != nil {
		return model.CityScore{}, errs.Infrastructure("fetch city score", err)
	}
	var sc model.CityScore
	if err := json.Unmarshal(b, &sc); err != nil {
		return model.CityScore{}, errs.Infrastructure("unmarshal city score", err)
	}
	return sc, nil
}

func (s *RedisCityScoreStore) Save(ctx context.Context, score model.CityScore) (model.CityScore, error) {
	b, err := json.Marshal(score)
	if err != nil {
		return model.CityScore{}, errs.Infrastructure("marshal city score", err)
	}
	key := strings.ToLower(score.City)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, scoreItemKey(score.City), b, 0)
		pipe.ZAdd(ctx, scoreRankingKey, redis.Z{Score: float64(score.TotalScore()), Member: key})
		return nil
	})
	if err != nil {
		return model.CityScore{}, errs.Infrastructure("save city score", err)
	}
	return score, nil
}

func (s *RedisCityScoreStore) TopCities(ctx context.Context, limit int) ([]model.CityScore, error) {
	if limit <= 0 {
		return nil, nil
	}
	// Ascending range: lowest total score first (worst-first ranking).
	keys, err := s.rdb.ZRange(ctx, scoreRankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errs.Infrastructure("range ranking index", err)
	}
	out := make([]model.CityScore, 0, len(keys))
	for _, key := range keys {
		b, err := s.rdb.Get(ctx, scoreItemKey(key)).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errs.Infrastructure("fetch city score", err)
		}
		var sc model.CityScore
		if err := json.Unmarshal(b, &sc); err != nil {
			return nil, errs.Infrastructure("unmarshal city score", err)
		}
		out = append(out, sc)
	}
	return out, nil
}
