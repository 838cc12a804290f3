package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-board/internal/types"
)

type FetcherTestSuite struct {
	suite.Suite
}

func TestFetcherSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func (suite *FetcherTestSuite) TestFetchDeliversLatest() {
	fetcher, _ := suite.newFetcher(nil)

	var delivered types.Series

	ok := fetcher.Fetch(context.Background(), suite.params("AAPL"), func(series types.Series, err error) {
		suite.NoError(err)
		delivered = series
	})

	suite.True(ok)
	suite.Len(delivered, 1)
}

func (suite *FetcherTestSuite) TestStaleResponseIsDropped() {
	slowArrived := make(chan struct{})
	releaseSlow := make(chan struct{})

	fetcher, _ := suite.newFetcher(func(ticker string) {
		if ticker == "SLOW" {
			close(slowArrived)
			<-releaseSlow
		}
	})

	staleDelivered := false
	slowDone := make(chan bool)

	go func() {
		slowDone <- fetcher.Fetch(context.Background(), suite.params("SLOW"), func(types.Series, error) {
			staleDelivered = true
		})
	}()

	// Wait until the first request is in flight, then submit a newer one.
	select {
	case <-slowArrived:
	case <-time.After(5 * time.Second):
		suite.FailNow("slow request never reached the server")
	}

	freshDelivered := false
	ok := fetcher.Fetch(context.Background(), suite.params("FAST"), func(series types.Series, err error) {
		suite.NoError(err)

		freshDelivered = true
	})
	suite.True(ok)
	suite.True(freshDelivered)

	// Release the first request; its response must be dropped.
	close(releaseSlow)
	suite.False(<-slowDone)
	suite.False(staleDelivered)
}

func (suite *FetcherTestSuite) newFetcher(onRequest func(ticker string)) (*Fetcher, *httptest.Server) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		if onRequest != nil && len(parts) > 2 {
			onRequest(parts[2])
		}

		w.Write([]byte(`{"data": {"2024-01-02": {"open": 1, "high": 1, "low": 1, "close": 1, "volume": 1}}}`))
	}))
	suite.T().Cleanup(server.Close)

	client, err := NewClient(Config{ProviderType: ProviderLocal, BaseURL: server.URL}, nil, nil)
	suite.Require().NoError(err)

	return NewFetcher(client), server
}

func (suite *FetcherTestSuite) params(ticker string) FetchParams {
	return FetchParams{
		Ticker:    ticker,
		Timeframe: TimeframeOneDay,
		Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}
