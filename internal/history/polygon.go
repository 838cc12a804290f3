package history

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// PolygonClient fetches bars from the Polygon aggregates API.
type PolygonClient struct {
	client *polygon.Client
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon api key is required")
	}

	return &PolygonClient{
		client: polygon.New(apiKey),
	}, nil
}

func (c *PolygonClient) GetHistory(ctx context.Context, ticker string, timeframe Timeframe, start time.Time, end time.Time, onProgress OnFetchProgress) (types.Series, error) {
	totalDays := end.Sub(start).Hours()/24 + 1

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: timeframe.Multiplier(),
		Timespan:   timeframe.PolygonTimespan(),
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithLimit(50000)

	iter := c.client.ListAggs(ctx, params)
	series := types.Series{}
	layout := timeframe.DateLayout()

	for iter.Next() {
		agg := iter.Item()
		barTime := time.Time(agg.Timestamp)
		series[barTime.Format(layout)] = types.Bar{
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		}

		if onProgress != nil {
			daysElapsed := barTime.Sub(start).Hours() / 24
			onProgress(daysElapsed, totalDays, fmt.Sprintf("Fetching %s history", ticker))
		}
	}

	if iter.Err() != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, iter.Err(), "error iterating polygon aggregates for %s", ticker)
	}

	return series, nil
}
