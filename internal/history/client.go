package history

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// Config holds the configuration for the history client.
type Config struct {
	ProviderType  ProviderType `json:"providerType" yaml:"providerType" validate:"required,oneof=local polygon binance"`
	BaseURL       string       `json:"baseUrl" yaml:"baseUrl" validate:"required_if=ProviderType local"`
	PolygonApiKey string       `json:"polygonApiKey" yaml:"polygonApiKey" validate:"required_if=ProviderType polygon"`
}

// FetchParams holds the parameters for a historical price request.
type FetchParams struct {
	Ticker    string    `validate:"required"`
	Timeframe Timeframe `validate:"required,oneof=1d 30m 5m"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required,gtefield=Start"`
}

// Client is the historical price client. It validates requests and delegates
// to the configured provider.
type Client struct {
	provider   Provider
	config     Config
	validate   *validator.Validate
	logger     *logger.Logger
	onProgress OnFetchProgress
}

// NewClient creates a new history client with the given configuration.
func NewClient(config Config, log *logger.Logger, onProgress OnFetchProgress) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid history client configuration", err)
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	provider, err := NewProvider(config.ProviderType, config)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider:   provider,
		config:     config,
		validate:   validate,
		logger:     log,
		onProgress: onProgress,
	}, nil
}

// GetHistory fetches the price series described by params.
// The context can be used to cancel the fetch.
func (c *Client) GetHistory(ctx context.Context, params FetchParams) (types.Series, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid history fetch parameters", err)
	}

	series, err := c.provider.GetHistory(ctx, params.Ticker, params.Timeframe, params.Start, params.End, c.onProgress)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched history",
		zap.String("ticker", params.Ticker),
		zap.String("timeframe", params.Timeframe.String()),
		zap.Int("bars", len(series)))

	return series, nil
}
