package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

const localRequestTimeout = 30 * time.Second

// LocalClient fetches bars from the companion history REST service.
// GET {base}/getHistory/{ticker}/{timeframe}/{start}/{end} returns a JSON
// document whose data field maps date strings to OHLCV records.
type LocalClient struct {
	baseURL    string
	httpClient *http.Client
}

type localHistoryResponse struct {
	Data map[string]localBar `json:"data"`
}

type localBar struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func NewLocalClient(baseURL string) (Provider, error) {
	if baseURL == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "base url is required")
	}

	return &LocalClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: localRequestTimeout,
		},
	}, nil
}

func (c *LocalClient) GetHistory(ctx context.Context, ticker string, timeframe Timeframe, start time.Time, end time.Time, onProgress OnFetchProgress) (types.Series, error) {
	endpoint := fmt.Sprintf("%s/getHistory/%s/%s/%s/%s",
		c.baseURL,
		url.PathEscape(ticker),
		timeframe,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"))

	if onProgress != nil {
		onProgress(0, 1, fmt.Sprintf("Fetching %s history", ticker))
	}

	var body []byte

	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("history service returned %d", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("history service returned %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		return nil
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(fetch, policy); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryFetchFailed, err, "failed to fetch history for %s", ticker)
	}

	var response localHistoryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeHistoryParseFailed, err, "failed to parse history response for %s", ticker)
	}

	series := make(types.Series, len(response.Data))
	for date, bar := range response.Data {
		series[date] = types.Bar{
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		}
	}

	if onProgress != nil {
		onProgress(1, 1, fmt.Sprintf("Fetched %d bars for %s", len(series), ticker))
	}

	return series, nil
}
