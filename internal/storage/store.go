// Package storage provides the news and city-score stores behind two
// interchangeable backends: an in-process one and a Redis one. Both expose
// the same contracts; the caller constructs one at process start and injects
// it into the service.
package storage

import (
	"context"
	"time"

	"citypulse/internal/model"
)

// NewsStore persists news items and serves them in recency order.
type NewsStore interface {
	// Save persists the item, replacing any previous item with the same ID,
	// and refreshes the global and per-city recency indexes.
	Save(ctx context.Context, item model.NewsItem) (model.NewsItem, error)
	// Latest returns at most limit items, newest publication date first.
	Latest(ctx context.Context, limit int) ([]model.NewsItem, error)
	// LatestInCity is Latest restricted to one city (case-insensitive).
	LatestInCity(ctx context.Context, city string, limit int) ([]model.NewsItem, error)
}

// CityScoreStore persists per-city scores and ranks them by total score.
type CityScoreStore interface {
	// GetOrCreate looks the city up case-insensitively; if absent it persists
	// and returns a fresh base score. The country argument is only used on
	// the create path.
	GetOrCreate(ctx context.Context, city, country string) (model.CityScore, error)
	// Save upserts the score under its lowercased city key and refreshes the
	// ranking index.
	Save(ctx context.Context, score model.CityScore) (model.CityScore, error)
	// TopCities returns at most limit scores, ascending by total score:
	// the worst-ranked city comes first.
	TopCities(ctx context.Context, limit int) ([]model.CityScore, error)
}

// recencyScore converts a publication date to the sortable index score:
// unix seconds of UTC midnight. Unparsable dates sort to the epoch.
func recencyScore(date string) float64 {
	t, err := time.ParseInLocation(model.DateLayout, date, time.UTC)
	if err != nil {
		return 0
	}
	return float64(t.Unix())
}
