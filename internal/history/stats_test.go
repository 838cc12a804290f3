package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-board/internal/types"
)

type StatsTestSuite struct {
	suite.Suite
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (suite *StatsTestSuite) TestComputeStats() {
	series := types.Series{
		"2024-01-02": {Open: 100, High: 115, Low: 98, Close: 110, Volume: 1000},
		"2024-01-03": {Open: 110, High: 130, Low: 90, Close: 120, Volume: 2000},
		"2024-01-04": {Open: 120, High: 126, Low: 119, Close: 125, Volume: 500},
	}

	stats := ComputeStats(series)

	suite.Equal(3, stats.Bars)
	suite.Equal("130", stats.High.String())
	suite.Equal("90", stats.Low.String())
	suite.Equal("3500", stats.TotalVolume.String())
	// (125 - 110) / 110
	want := decimal.NewFromInt(15).Div(decimal.NewFromInt(110))
	suite.True(stats.TotalReturn.Equal(want))
}

func (suite *StatsTestSuite) TestComputeStatsEmptySeries() {
	stats := ComputeStats(types.Series{})

	suite.Equal(0, stats.Bars)
	suite.True(stats.High.IsZero())
	suite.True(stats.Low.IsZero())
	suite.True(stats.TotalVolume.IsZero())
	suite.True(stats.TotalReturn.IsZero())
}

func (suite *StatsTestSuite) TestComputeStatsZeroFirstClose() {
	series := types.Series{
		"2024-01-02": {Close: 0},
		"2024-01-03": {Close: 10},
	}

	stats := ComputeStats(series)
	suite.True(stats.TotalReturn.IsZero())
}
