// Package service orchestrates the news store and the city score store. It
// holds no state of its own beyond the injected stores.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"citypulse/internal/errs"
	"citypulse/internal/model"
	"citypulse/internal/storage"
)

// defaultLimit applies when a caller asks for zero or fewer results.
const defaultLimit = 10

type Service struct {
	news   storage.NewsStore
	scores storage.CityScoreStore

	now   func() time.Time
	newID func() string
}

func New(news storage.NewsStore, scores storage.CityScoreStore) *Service {
	return &Service{
		news:   news,
		scores: scores,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// IngestNews validates and persists a news item, then folds its tags into the
// originating city's score. The two store writes are separate calls with no
// cross-store transaction: if the score update fails after the news write
// succeeded, the item stays stored and the error surfaces to the caller.
func (s *Service) IngestNews(ctx context.Context, candidate model.NewsItem) (model.NewsItem, error) {
	if candidate.Headline == "" {
		return model.NewsItem{}, errs.InvalidArgumentf("headline is required")
	}
	if candidate.City == "" {
		return model.NewsItem{}, errs.InvalidArgumentf("city is required")
	}
	if candidate.Date == "" {
		candidate.Date = s.now().UTC().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, candidate.Date); err != nil {
		return model.NewsItem{}, errs.InvalidArgumentf("date %q is not %s", candidate.Date, model.DateLayout)
	}
	if candidate.ID == "" {
		candidate.ID = s.newID()
	}
	candidate.Tags = normalizeTags(candidate.Tags)

	saved, err := s.news.Save(ctx, candidate)
	if err != nil {
		return model.NewsItem{}, err
	}

	if len(saved.Tags) > 0 {
		score, err := s.scores.GetOrCreate(ctx, saved.City, saved.Country)
		if err != nil {
			return saved, err
		}
		score.ApplyTags(saved.Tags)
		if _, err := s.scores.Save(ctx, score); err != nil {
			return saved, err
		}
	}
	return saved, nil
}

// LatestNews returns the newest items across all cities.
func (s *Service) LatestNews(ctx context.Context, limit int) ([]model.NewsItem, error) {
	return s.news.Latest(ctx, orDefault(limit))
}

// LatestNewsInCity returns the newest items for one city (case-insensitive).
func (s *Service) LatestNewsInCity(ctx context.Context, city string, limit int) ([]model.NewsItem, error) {
	if city == "" {
		return nil, errs.InvalidArgumentf("city is required")
	}
	return s.news.LatestInCity(ctx, city, orDefault(limit))
}

// CityScore returns the city's score, creating the base score on first
// reference. The country is unknown at this call site and left empty.
func (s *Service) CityScore(ctx context.Context, city string) (model.CityScore, error) {
	if city == "" {
		return model.CityScore{}, errs.InvalidArgumentf("city is required")
	}
	return s.scores.GetOrCreate(ctx, city, "")
}

// TopCities ranks cities ascending by total score, worst first.
func (s *Service) TopCities(ctx context.Context, limit int) ([]model.CityScore, error) {
	return s.scores.TopCities(ctx, orDefault(limit))
}

// normalizeTags lowercases and de-duplicates, keeping first-occurrence order.
func normalizeTags(tags []string) []string {
	return lo.Uniq(lo.Map(tags, func(t string, _ int) string {
		return strings.ToLower(t)
	}))
}

func orDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
