package types

import "sort"

// Bar is a single OHLCV record returned by the historical price service.
type Bar struct {
	Open   float64 `yaml:"open" json:"open"`
	High   float64 `yaml:"high" json:"high"`
	Low    float64 `yaml:"low" json:"low"`
	Close  float64 `yaml:"close" json:"close"`
	Volume float64 `yaml:"volume" json:"volume"`
}

// Series is a historical price series keyed by date string. Daily series use
// "2006-01-02" keys; intraday series append the time of day.
type Series map[string]Bar

// Dates returns the series keys in ascending order.
func (s Series) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}

	sort.Strings(dates)

	return dates
}
