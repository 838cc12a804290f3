package history

import (
	"context"
	"fmt"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// binancePageSize is the maximum number of klines Binance returns per request.
const binancePageSize = 500

// BinanceClient fetches bars from the Binance klines API.
type BinanceClient struct {
	client *binance.Client
}

func NewBinanceClient() (Provider, error) {
	return &BinanceClient{
		client: binance.NewClient("", ""),
	}, nil
}

// GetHistory pages through the klines endpoint until the requested range is
// covered, normalizing each kline into a Bar keyed by its open time.
func (c *BinanceClient) GetHistory(ctx context.Context, ticker string, timeframe Timeframe, start time.Time, end time.Time, onProgress OnFetchProgress) (types.Series, error) {
	startMillis := start.UnixMilli()
	endMillis := end.UnixMilli()
	currentStart := startMillis

	series := types.Series{}
	layout := timeframe.DateLayout()

	for {
		klines, err := c.client.NewKlinesService().
			Symbol(ticker).
			Interval(timeframe.BinanceInterval()).
			StartTime(currentStart).
			EndTime(endMillis).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err, "failed to fetch klines for %s", ticker)
		}

		for _, k := range klines {
			open, _ := strconv.ParseFloat(k.Open, 64)
			high, _ := strconv.ParseFloat(k.High, 64)
			low, _ := strconv.ParseFloat(k.Low, 64)
			closePrice, _ := strconv.ParseFloat(k.Close, 64)
			volume, _ := strconv.ParseFloat(k.Volume, 64)

			series[time.UnixMilli(k.OpenTime).Format(layout)] = types.Bar{
				Open:   open,
				High:   high,
				Low:    low,
				Close:  closePrice,
				Volume: volume,
			}
		}

		if onProgress != nil {
			onProgress(float64(currentStart-startMillis), float64(endMillis-startMillis), fmt.Sprintf("Fetching %s history", ticker))
		}

		if len(klines) < binancePageSize {
			break
		}

		// Resume one millisecond past the last kline to avoid duplicates.
		currentStart = klines[len(klines)-1].CloseTime + 1
		if currentStart >= endMillis {
			break
		}
	}

	if onProgress != nil {
		onProgress(float64(endMillis-startMillis), float64(endMillis-startMillis), fmt.Sprintf("Fetched %d bars for %s", len(series), ticker))
	}

	return series, nil
}
