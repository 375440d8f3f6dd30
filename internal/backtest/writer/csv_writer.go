package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// CSVWriter writes the trade log and equity curve as CSV files. It is the
// plain-text counterpart of TradesWriter for consumers without a parquet
// reader. Column layout matches the parquet trades schema.
type CSVWriter struct {
	tradesPath string
	equityPath string

	tradesFile *os.File
	equityFile *os.File

	tradesCsv *csv.Writer
	equityCsv *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// tradesPath and equityPath are the full paths of the two output files.
func NewCSVWriter(tradesPath, equityPath string) *CSVWriter {
	return &CSVWriter{
		tradesPath: tradesPath,
		equityPath: equityPath,
	}
}

// Initialize creates the output directories and both files with their
// header rows.
func (w *CSVWriter) Initialize() error {
	for _, path := range []string{w.tradesPath, w.equityPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create results directory", err)
		}
	}

	tradesFile, err := os.Create(w.tradesPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create trades csv file", err)
	}

	w.tradesFile = tradesFile
	w.tradesCsv = csv.NewWriter(tradesFile)

	if err := w.tradesCsv.Write([]string{
		"entry_time", "exit_time", "entry_price", "exit_price",
		"side", "quantity", "pnl", "percent_pnl", "is_open",
	}); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write trades csv header", err)
	}

	equityFile, err := os.Create(w.equityPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create equity curve csv file", err)
	}

	w.equityFile = equityFile
	w.equityCsv = csv.NewWriter(equityFile)

	if err := w.equityCsv.Write([]string{"time", "equity"}); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write equity curve csv header", err)
	}

	return nil
}

// WriteTrades writes the trade log. Exit time and price are left empty for
// trades still open at the end of the run.
func (w *CSVWriter) WriteTrades(trades []types.Trade) error {
	for _, trade := range trades {
		exitTime := ""
		if trade.ExitTime.IsSome() {
			exitTime = trade.ExitTime.Unwrap().Format(time.RFC3339)
		}

		exitPrice := ""
		if trade.ExitPrice.IsSome() {
			exitPrice = fmt.Sprintf("%f", trade.ExitPrice.Unwrap())
		}

		record := []string{
			trade.EntryTime.Format(time.RFC3339),
			exitTime,
			fmt.Sprintf("%f", trade.EntryPrice),
			exitPrice,
			string(trade.Side),
			fmt.Sprintf("%f", trade.Quantity),
			fmt.Sprintf("%f", trade.PnL),
			fmt.Sprintf("%f", trade.PercentPnL),
			fmt.Sprintf("%t", trade.IsOpen),
		}

		if err := w.tradesCsv.Write(record); err != nil {
			return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write trade record", err)
		}
	}

	w.tradesCsv.Flush()

	if err := w.tradesCsv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to flush trades csv", err)
	}

	return nil
}

// WriteEquityCurve writes the equity curve, one row per bar.
func (w *CSVWriter) WriteEquityCurve(points []types.EquityPoint) error {
	for _, point := range points {
		record := []string{
			point.Time.Format(time.RFC3339),
			fmt.Sprintf("%f", point.Value),
		}

		if err := w.equityCsv.Write(record); err != nil {
			return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to write equity curve point", err)
		}
	}

	w.equityCsv.Flush()

	if err := w.equityCsv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to flush equity curve csv", err)
	}

	return nil
}

// Close flushes and closes both files.
func (w *CSVWriter) Close() error {
	if w.tradesCsv != nil {
		w.tradesCsv.Flush()
	}

	if w.equityCsv != nil {
		w.equityCsv.Flush()
	}

	if w.tradesFile != nil {
		if err := w.tradesFile.Close(); err != nil {
			return err
		}

		w.tradesFile = nil
	}

	if w.equityFile != nil {
		if err := w.equityFile.Close(); err != nil {
			return err
		}

		w.equityFile = nil
	}

	return nil
}
