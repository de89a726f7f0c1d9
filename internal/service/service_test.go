package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"citypulse/internal/errs"
	"citypulse/internal/model"
	"citypulse/internal/storage"
)

func newTestService() (*Service, *storage.MemoryNewsStore, *storage.MemoryCityScoreStore) {
	news := storage.NewMemoryNewsStore()
	scores := storage.NewMemoryCityScoreStore()
	svc := New(news, scores)
	svc.now = func() time.Time { return time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "fixed-id" }
	return svc, news, scores
}

func TestIngestNewsAppliesTagsToCityScore(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	saved, err := svc.IngestNews(ctx, model.NewsItem{
		Headline: "X",
		City:     "Paris",
		Country:  "France",
		Tags:     []string{"innovation", "pollution"},
	})
	if err != nil {
		t.Fatalf("IngestNews: %v", err)
	}
	if saved.ID != "fixed-id" {
		t.Errorf("ID = %s, want assigned id", saved.ID)
	}
	if saved.Date != "2026-02-20" {
		t.Errorf("Date = %s, want defaulted to today", saved.Date)
	}

	sc, err := svc.CityScore(ctx, "Paris")
	if err != nil {
		t.Fatalf("CityScore: %v", err)
	}
	want := [4]int{980, 1010, 1055, 1000}
	got := [4]int{sc.QualityOfLife, sc.Safety, sc.Economy, sc.Culture}
	if got != want {
		t.Fatalf("score = %v, want %v", got, want)
	}
	if sc.TotalScore() != 4045 {
		t.Errorf("TotalScore() = %d, want 4045", sc.TotalScore())
	}
	if sc.Country != "France" {
		t.Errorf("Country = %s, want France from the ingested item", sc.Country)
	}
}

func TestIngestNewsKeepsExplicitIDAndDate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	saved, err := svc.IngestNews(ctx, model.NewsItem{
		ID:       "given",
		Headline: "X",
		City:     "Paris",
		Date:     "2026-01-05",
	})
	if err != nil {
		t.Fatalf("IngestNews: %v", err)
	}
	if saved.ID != "given" || saved.Date != "2026-01-05" {
		t.Errorf("got (%s, %s), want caller-supplied id and date", saved.ID, saved.Date)
	}
}

func TestIngestNewsNormalizesTags(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	saved, err := svc.IngestNews(ctx, model.NewsItem{
		Headline: "X",
		City:     "Paris",
		Tags:     []string{"Crime", "crime", "FESTIVAL"},
	})
	if err != nil {
		t.Fatalf("IngestNews: %v", err)
	}
	if want := []string{"crime", "festival"}; !reflect.DeepEqual(saved.Tags, want) {
		t.Errorf("Tags = %v, want %v", saved.Tags, want)
	}
}

func TestIngestNewsWithoutTagsSkipsScoreUpdate(t *testing.T) {
	ctx := context.Background()
	news := storage.NewMemoryNewsStore()
	scores := &failingScoreStore{}
	svc := New(news, scores)

	if _, err := svc.IngestNews(ctx, model.NewsItem{Headline: "X", City: "Paris"}); err != nil {
		t.Fatalf("tagless ingest touched the score store: %v", err)
	}
}

func TestIngestNewsValidation(t *testing.T) {
	ctx := context.Background()
	svc, news, scores := newTestService()

	cases := []model.NewsItem{
		{Headline: "", City: "Paris"},
		{Headline: "X", City: ""},
		{Headline: "X", City: "Paris", Date: "20-02-2026"},
	}
	for _, c := range cases {
		if _, err := svc.IngestNews(ctx, c); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Errorf("IngestNews(%+v) error = %v, want ErrInvalidArgument", c, err)
		}
	}

	// No store writes happened for any rejected candidate.
	if got, _ := news.Latest(ctx, 10); len(got) != 0 {
		t.Errorf("rejected ingest wrote %d news items", len(got))
	}
	if got, _ := scores.TopCities(ctx, 10); len(got) != 0 {
		t.Errorf("rejected ingest wrote %d scores", len(got))
	}
}

func TestIngestNewsScoreFailureKeepsNews(t *testing.T) {
	ctx := context.Background()
	news := storage.NewMemoryNewsStore()
	svc := New(news, &failingScoreStore{})
	svc.newID = func() string { return "kept" }

	_, err := svc.IngestNews(ctx, model.NewsItem{
		Headline: "X",
		City:     "Paris",
		Tags:     []string{"innovation"},
	})
	if !errors.Is(err, errs.ErrInfrastructure) {
		t.Fatalf("error = %v, want ErrInfrastructure", err)
	}

	// The news write preceded the score failure and stays visible.
	got, err := svc.LatestNews(ctx, 10)
	if err != nil {
		t.Fatalf("LatestNews: %v", err)
	}
	if len(got) != 1 || got[0].ID != "kept" {
		t.Errorf("news item lost after score failure: %v", got)
	}
}

func TestCityScopedQueriesRequireCity(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	if _, err := svc.LatestNewsInCity(ctx, "", 10); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("LatestNewsInCity error = %v, want ErrInvalidArgument", err)
	}
	if _, err := svc.CityScore(ctx, ""); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("CityScore error = %v, want ErrInvalidArgument", err)
	}
}

func TestCityScoreCreatesLazily(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	sc, err := svc.CityScore(ctx, "Lisbon")
	if err != nil {
		t.Fatalf("CityScore: %v", err)
	}
	if sc.TotalScore() != 4000 {
		t.Errorf("fresh city total = %d, want 4000", sc.TotalScore())
	}
}

func TestLimitsDefaultToTen(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	for i := 0; i < 15; i++ {
		if _, err := svc.IngestNews(ctx, model.NewsItem{
			ID:       fmt.Sprintf("item-%d", i),
			Headline: "X",
			City:     "Paris",
		}); err != nil {
			t.Fatalf("IngestNews: %v", err)
		}
	}

	got, err := svc.LatestNews(ctx, 0)
	if err != nil {
		t.Fatalf("LatestNews: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("LatestNews(0) len = %d, want default 10", len(got))
	}
}

func TestTopCitiesDelegatesAscending(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	for _, c := range []struct {
		city string
		tags []string
	}{
		{"Paris", []string{"innovation"}},
		{"Berlin", []string{"crime"}},
	} {
		if _, err := svc.IngestNews(ctx, model.NewsItem{
			Headline: "X", City: c.city, Tags: c.tags,
		}); err != nil {
			t.Fatalf("IngestNews: %v", err)
		}
	}

	top, err := svc.TopCities(ctx, 10)
	if err != nil {
		t.Fatalf("TopCities: %v", err)
	}
	if len(top) != 2 || top[0].City != "Berlin" {
		t.Errorf("worst-first ranking broken: %v", top)
	}
}

// failingScoreStore fails every operation, standing in for an unreachable
// backend.
type failingScoreStore struct{}

func (f *failingScoreStore) GetOrCreate(context.Context, string, string) (model.CityScore, error) {
	return model.CityScore{}, errs.Infrastructure("get or create", errors.New("connection refused"))
}

func (f *failingScoreStore) Save(context.Context, model.CityScore) (model.CityScore, error) {
	return model.CityScore{}, errs.Infrastructure("save", errors.New("connection refused"))
}

func (f *failingScoreStore) TopCities(context.Context, int) ([]model.CityScore, error) {
	return nil, errs.Infrastructure("top cities", errors.New("connection refused"))
}
