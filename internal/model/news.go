package model

// DateLayout is the calendar-date format used throughout: no time-of-day.
const DateLayout = "2006-01-02"

// NewsItem is a single tagged news event attached to a city.
// An item is created once and never mutated afterwards.
type NewsItem struct {
	ID       string   `json:"id" yaml:"id"`
	Headline string   `json:"headline" yaml:"headline"`
	Source   string   `json:"source" yaml:"source"`
	Date     string   `json:"date" yaml:"date"` // DateLayout
	Tags     []string `json:"tags" yaml:"tags"`
	City     string   `json:"city" yaml:"city"`
	Country  string   `json:"country" yaml:"country"`
}
