package writer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

type CSVWriterTestSuite struct {
	suite.Suite
}

func TestCSVWriterSuite(t *testing.T) {
	suite.Run(t, new(CSVWriterTestSuite))
}

func readCSVFile(suite *CSVWriterTestSuite, path string) [][]string {
	file, err := os.Open(path)
	suite.Require().NoError(err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	suite.Require().NoError(err)

	return records
}

func (suite *CSVWriterTestSuite) TestWriteTradesRoundTrip() {
	dir := suite.T().TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	entryTime := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	exitTime := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	trades := []types.Trade{
		{
			EntryTime:  entryTime,
			ExitTime:   optional.Some(exitTime),
			EntryPrice: 11.0055,
			ExitPrice:  optional.Some(13.993),
			Side:       types.SideLong,
			Quantity:   907.73,
			PnL:        2700.5,
			PercentPnL: 27.03,
			IsOpen:     false,
		},
		{
			EntryTime:  entryTime,
			ExitTime:   optional.None[time.Time](),
			EntryPrice: 100,
			ExitPrice:  optional.None[float64](),
			Side:       types.SideShort,
			Quantity:   99.9,
			PnL:        -9.99,
			PercentPnL: -0.1,
			IsOpen:     true,
		},
	}

	w := NewCSVWriter(tradesPath, equityPath)
	suite.NoError(w.Initialize())
	suite.NoError(w.WriteTrades(trades))
	suite.NoError(w.Close())

	records := readCSVFile(suite, tradesPath)
	suite.Len(records, 3)

	suite.Equal([]string{
		"entry_time", "exit_time", "entry_price", "exit_price",
		"side", "quantity", "pnl", "percent_pnl", "is_open",
	}, records[0])

	closed := records[1]
	suite.Equal(entryTime.Format(time.RFC3339), closed[0])
	suite.Equal(exitTime.Format(time.RFC3339), closed[1])
	suite.Equal("11.005500", closed[2])
	suite.Equal("13.993000", closed[3])
	suite.Equal("long", closed[4])
	suite.Equal("false", closed[8])

	// Open trades leave the exit columns empty.
	open := records[2]
	suite.Empty(open[1])
	suite.Empty(open[3])
	suite.Equal("short", open[4])
	suite.Equal("-9.990000", open[6])
	suite.Equal("true", open[8])
}

func (suite *CSVWriterTestSuite) TestWriteEquityCurve() {
	dir := suite.T().TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := []types.EquityPoint{
		{Time: start, Value: 10000},
		{Time: start.AddDate(0, 0, 1), Value: 10150.25},
	}

	w := NewCSVWriter(tradesPath, equityPath)
	suite.NoError(w.Initialize())
	suite.NoError(w.WriteEquityCurve(points))
	suite.NoError(w.Close())

	records := readCSVFile(suite, equityPath)
	suite.Len(records, 3)

	suite.Equal([]string{"time", "equity"}, records[0])
	suite.Equal(start.Format(time.RFC3339), records[1][0])
	suite.Equal("10000.000000", records[1][1])
	suite.Equal("10150.250000", records[2][1])
}

func (suite *CSVWriterTestSuite) TestInitializeCreatesDirectories() {
	dir := suite.T().TempDir()
	tradesPath := filepath.Join(dir, "nested", "run", "trades.csv")
	equityPath := filepath.Join(dir, "nested", "run", "equity.csv")

	w := NewCSVWriter(tradesPath, equityPath)
	suite.NoError(w.Initialize())
	suite.NoError(w.Close())

	suite.FileExists(tradesPath)
	suite.FileExists(equityPath)
}
