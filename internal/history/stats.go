package history

import (
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-board/internal/types"
)

// SeriesStats summarizes a price series.
type SeriesStats struct {
	High        decimal.Decimal
	Low         decimal.Decimal
	TotalVolume decimal.Decimal
	// TotalReturn is the fractional change from the first close to the last
	// close in date order, e.g. 0.25 for a 25% gain.
	TotalReturn decimal.Decimal
	Bars        int
}

// ComputeStats walks the series in date order and aggregates its extremes,
// volume, and total return. An empty series yields zero stats.
func ComputeStats(series types.Series) SeriesStats {
	stats := SeriesStats{
		High:        decimal.Zero,
		Low:         decimal.Zero,
		TotalVolume: decimal.Zero,
		TotalReturn: decimal.Zero,
		Bars:        len(series),
	}

	dates := series.Dates()
	if len(dates) == 0 {
		return stats
	}

	firstClose := decimal.NewFromFloat(series[dates[0]].Close)
	lastClose := decimal.NewFromFloat(series[dates[len(dates)-1]].Close)

	stats.High = decimal.NewFromFloat(series[dates[0]].High)
	stats.Low = decimal.NewFromFloat(series[dates[0]].Low)

	for _, date := range dates {
		bar := series[date]

		high := decimal.NewFromFloat(bar.High)
		if high.GreaterThan(stats.High) {
			stats.High = high
		}

		low := decimal.NewFromFloat(bar.Low)
		if low.LessThan(stats.Low) {
			stats.Low = low
		}

		stats.TotalVolume = stats.TotalVolume.Add(decimal.NewFromFloat(bar.Volume))
	}

	if !firstClose.IsZero() {
		stats.TotalReturn = lastClose.Sub(firstClose).Div(firstClose)
	}

	return stats
}
