package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ResultTestSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultTestSuite))
}

func (suite *ResultTestSuite) TestRealizedPnL() {
	result := &Result{
		Trades: []Trade{
			{PnL: 0.1},
			{PnL: 0.2},
			{PnL: -0.3},
		},
	}

	// Decimal summation keeps the total exact where float accumulation
	// would leave residue.
	suite.Zero(result.RealizedPnL())
}

func (suite *ResultTestSuite) TestRealizedPnLNoTrades() {
	result := &Result{}
	suite.Zero(result.RealizedPnL())
}

func (suite *ResultTestSuite) TestWriteResult() {
	path := filepath.Join(suite.T().TempDir(), "result.yaml")

	result := &Result{
		RunID:          "run-1",
		Timestamp:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Strategy:       "ma_crossover",
		InitialCapital: 10000,
		FinalCapital:   10500,
		TotalPnL:       500,
		PercentReturn:  5,
		WinningTrades:  1,
		WinRate:        100,
	}

	suite.NoError(WriteResult(path, result))

	data, err := os.ReadFile(path)
	suite.NoError(err)

	content := string(data)
	suite.Contains(content, "run_id: run-1")
	suite.Contains(content, "strategy: ma_crossover")
	suite.Contains(content, "initial_capital: 10000")
	suite.NotContains(content, "trades_file_path")
}

func (suite *ResultTestSuite) TestWriteResultBadPath() {
	err := WriteResult(filepath.Join(suite.T().TempDir(), "missing", "result.yaml"), &Result{})
	suite.Error(err)
}

func (suite *ResultTestSuite) TestSignalString() {
	suite.Equal("buy", SignalBuy.String())
	suite.Equal("sell", SignalSell.String())
	suite.Equal("hold", SignalHold.String())
	suite.Equal("unknown", SignalValue(7).String())
}
