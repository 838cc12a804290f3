package history

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// ProviderType defines the type of historical price provider.
type ProviderType string

const (
	ProviderLocal   ProviderType = "local"
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// OnFetchProgress is called as a fetch advances through the requested range.
type OnFetchProgress = func(current float64, total float64, message string)

// Provider fetches historical OHLCV bars for a ticker over a date range.
// Implementations normalize their upstream format into a date-keyed Series.
type Provider interface {
	// GetHistory fetches bars for ticker between start and end inclusive at
	// the given timeframe. The context can be used to cancel the fetch.
	GetHistory(ctx context.Context, ticker string, timeframe Timeframe, start time.Time, end time.Time, onProgress OnFetchProgress) (types.Series, error)
}

// NewProvider creates a historical price provider based on the provider type.
func NewProvider(providerType ProviderType, config Config) (Provider, error) {
	switch providerType {
	case ProviderLocal:
		return NewLocalClient(config.BaseURL)
	case ProviderPolygon:
		return NewPolygonClient(config.PolygonApiKey)
	case ProviderBinance:
		return NewBinanceClient()
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported history provider: %s", providerType)
	}
}
