// Package writer persists backtest trade logs as parquet files.
package writer

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// TradesWriter writes a trade log to a parquet file through an in-memory
// DuckDB instance.
type TradesWriter struct {
	db         *sql.DB
	outputPath string
	sq         squirrel.StatementBuilderType
	mu         sync.Mutex
}

// NewTradesWriter creates a new TradesWriter.
// outputPath is the full path to the parquet file.
func NewTradesWriter(outputPath string) *TradesWriter {
	return &TradesWriter{
		db:         nil,
		outputPath: outputPath,
		sq:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		mu:         sync.Mutex{},
	}
}

// Initialize sets up the output directory and the staging table.
func (w *TradesWriter) Initialize() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(w.outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create results directory", err)
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to open duckdb", err)
	}

	w.db = db

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			entry_time TIMESTAMP,
			exit_time TIMESTAMP,
			entry_price DOUBLE,
			exit_price DOUBLE,
			side TEXT,
			quantity DOUBLE,
			pnl DOUBLE,
			percent_pnl DOUBLE,
			is_open BOOLEAN
		)
	`)
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to create trades table", err)
	}

	return nil
}

// Write stages the trades and exports them to the parquet file. Exit time
// and price are NULL for trades still open at the end of the run.
func (w *TradesWriter) Write(trades []types.Trade) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, trade := range trades {
		var exitTime any
		if trade.ExitTime.IsSome() {
			exitTime = trade.ExitTime.Unwrap()
		}

		var exitPrice any
		if trade.ExitPrice.IsSome() {
			exitPrice = trade.ExitPrice.Unwrap()
		}

		insert := w.sq.
			Insert("trades").
			Columns("entry_time", "exit_time", "entry_price", "exit_price",
				"side", "quantity", "pnl", "percent_pnl", "is_open").
			Values(trade.EntryTime, exitTime, trade.EntryPrice, exitPrice,
				string(trade.Side), trade.Quantity, trade.PnL, trade.PercentPnL, trade.IsOpen).
			RunWith(w.db)

		if _, err := insert.Exec(); err != nil {
			return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to insert trade", err)
		}
	}

	return w.exportToParquet()
}

// GetOutputPath returns the parquet file path.
func (w *TradesWriter) GetOutputPath() string {
	return w.outputPath
}

// Close releases the underlying database.
func (w *TradesWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.db == nil {
		return nil
	}

	err := w.db.Close()
	w.db = nil

	return err
}

// exportToParquet exports the staged trades to the parquet file.
func (w *TradesWriter) exportToParquet() error {
	query := `COPY (SELECT * FROM trades ORDER BY entry_time) TO '` + w.outputPath + `' (FORMAT 'parquet')`

	if _, err := w.db.Exec(query); err != nil {
		return errors.Wrap(errors.ErrCodeResultWriteFailed, "failed to export trades to parquet", err)
	}

	return nil
}
