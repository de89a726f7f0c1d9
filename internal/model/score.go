package model

import (
	"strings"
	"time"
)

// CityScore tracks four livability metrics for a city. Every city starts at
// 1000 per metric and no metric ever drops below 0.
type CityScore struct {
	City          string `json:"city"`
	Country       string `json:"country"`
	UpdatedAt     string `json:"updated_at"` // DateLayout
	QualityOfLife int    `json:"quality_of_life"`
	Safety        int    `json:"safety"`
	Economy       int    `json:"economy"`
	Culture       int    `json:"culture"`
}

// NewCityScore returns a fresh score with the base metrics.
func NewCityScore(city, country string) CityScore {
	return CityScore{
		City:          city,
		Country:       country,
		UpdatedAt:     time.Now().UTC().Format(DateLayout),
		QualityOfLife: 1000,
		Safety:        1000,
		Economy:       1000,
		Culture:       1000,
	}
}

// TotalScore is the sum of the four metrics. It is always recomputed, never
// stored on the struct.
func (s CityScore) TotalScore() int {
	return s.QualityOfLife + s.Safety + s.Economy + s.Culture
}

// ApplyTag folds one tag's deltas into the score. Unknown tags are no-ops.
// Each metric is clamped at 0 after the addition.
func (s *CityScore) ApplyTag(tag string) {
	d := tagDeltas[strings.ToLower(tag)]
	s.QualityOfLife = clampZero(s.QualityOfLife + d.qualityOfLife)
	s.Safety = clampZero(s.Safety + d.safety)
	s.Economy = clampZero(s.Economy + d.economy)
	s.Culture = clampZero(s.Culture + d.culture)
	s.UpdatedAt = time.Now().UTC().Format(DateLayout)
}

// ApplyTags applies every tag in input order, one at a time. Clamping happens
// per tag, not on the summed batch, so a metric floored at 0 by earlier tags
// can still be raised by later ones.
func (s *CityScore) ApplyTags(tags []string) {
	for _, tag := range tags {
		s.ApplyTag(tag)
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

type deltas struct {
	qualityOfLife int
	safety        int
	economy       int
	culture       int
}

// tagDeltas is static domain knowledge: per-tag adjustments to
// (quality_of_life, safety, economy, culture). Tags absent from the table
// have no impact.
var tagDeltas = map[string]deltas{
	"innovation": {30, 20, 60, 5},
	"crime":      {-40, -80, -20, -10},
	"festival":   {20, 0, 10, 60},
	"economy":    {10, 0, 50, 0},
	"pollution":  {-50, -10, -5, -5},
	"tourism":    {20, 5, 30, 40},
	"education":  {30, 10, 20, 30},
	"health":     {40, 20, 10, 0},
	"sports":     {20, 5, 15, 30},
	"politics":   {0, -10, 10, 0},
}
