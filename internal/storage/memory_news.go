package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"citypulse/internal/model"
)

// MemoryNewsStore keeps all items in memory behind a single mutex. Suitable
// for small working sets and tests.
type MemoryNewsStore struct {
	mu    sync.Mutex
	items []model.NewsItem
}

func NewMemoryNewsStore() *MemoryNewsStore {
	return &MemoryNewsStore{}
}

func (s *MemoryNewsStore) Save(_ context.Context, item model.NewsItem) (model.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-saving an ID overwrites instead of duplicating.
	s.items = lo.Reject(s.items, func(it model.NewsItem, _ int) bool {
		return it.ID == item.ID
	})
	s.items = append(s.items, item)
	return item, nil
}

func (s *MemoryNewsStore) Latest(_ context.Context, limit int) ([]model.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return takeLatest(s.items, limit), nil
}

func (s *MemoryNewsStore) LatestInCity(_ context.Context, city string, limit int) ([]model.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(city)
	inCity := lo.Filter(s.items, func(it model.NewsItem, _ int) bool {
		return strings.ToLower(it.City) == key
	})
	return takeLatest(inCity, limit), nil
}

// takeLatest sorts a copy newest-first and truncates. The sort is stable, so
// ties keep insertion order.
func takeLatest(items []model.NewsItem, limit int) []model.NewsItem {
	if limit <= 0 {
		return nil
	}
	out := make([]model.NewsItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return recencyScore(out[i].Date) > recencyScore(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
