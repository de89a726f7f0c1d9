package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"citypulse/internal/model"
)

// MemoryCityScoreStore keeps scores in a map keyed by lowercased city name,
// behind a single mutex. Ranking is a sort-on-read snapshot.
type MemoryCityScoreStore struct {
	mu     sync.Mutex
	scores map[string]model.CityScore
}

func NewMemoryCityScoreStore() *MemoryCityScoreStore {
	return &MemoryCityScoreStore{scores: make(map[string]model.CityScore)}
}

func (s *MemoryCityScoreStore) GetOrCreate(_ context.Context, city, country string) (model.CityScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(city)
	if sc, ok := s.scores[key]; ok {
		return sc, nil
	}
	sc := model.NewCityScore(city, country)
	s.scores[key] = sc
	return sc, nil
}

func (s *MemoryCityScoreStore) Save(_ context.Context, score model.CityScore) (model.CityScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[strings.ToLower(score.City)] = score
	return score, nil
}

func (s *MemoryCityScoreStore) TopCities(_ context.Context, limit int) ([]model.CityScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		return nil, nil
	}
	out := make([]model.CityScore, 0, len(s.scores))
	for _, sc := range s.scores {
		out = append(out, sc)
	}
	// Ascending: the lowest aggregate score ranks first. Ties order by city
	// key so the snapshot is deterministic despite map iteration.
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].TotalScore(), out[j].TotalScore()
		if ti != tj {
			return ti < tj
		}
		return strings.ToLower(out[i].City) < strings.ToLower(out[j].City)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
