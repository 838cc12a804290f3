package history

import (
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// Timeframe is the bar resolution for a historical price request.
type Timeframe string

const (
	TimeframeOneDay        Timeframe = "1d"
	TimeframeThirtyMinutes Timeframe = "30m"
	TimeframeFiveMinutes   Timeframe = "5m"
)

// Valid reports whether the timeframe is one of the supported resolutions.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeOneDay, TimeframeThirtyMinutes, TimeframeFiveMinutes:
		return true
	default:
		return false
	}
}

func (t Timeframe) String() string {
	return string(t)
}

// ParseTimeframe converts a timeframe token into a Timeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(s)
	if !tf.Valid() {
		return "", errors.Newf(errors.ErrCodeInvalidTimeframe, "invalid timeframe: %s", s)
	}

	return tf, nil
}

// Multiplier returns the bar width multiplier for the timeframe's base unit.
func (t Timeframe) Multiplier() int {
	switch t {
	case TimeframeThirtyMinutes:
		return 30
	case TimeframeFiveMinutes:
		return 5
	default:
		return 1
	}
}

// PolygonTimespan converts the timeframe into polygon's base timespan unit.
func (t Timeframe) PolygonTimespan() models.Timespan {
	switch t {
	case TimeframeThirtyMinutes, TimeframeFiveMinutes:
		return models.Minute
	default:
		return models.Day
	}
}

// BinanceInterval converts the timeframe into binance's kline interval token.
func (t Timeframe) BinanceInterval() string {
	switch t {
	case TimeframeThirtyMinutes:
		return "30m"
	case TimeframeFiveMinutes:
		return "5m"
	default:
		return "1d"
	}
}

// DateLayout is the date format used for series keys and request paths.
func (t Timeframe) DateLayout() string {
	if t == TimeframeOneDay {
		return "2006-01-02"
	}

	return "2006-01-02 15:04"
}
