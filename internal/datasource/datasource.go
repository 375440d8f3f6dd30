// Package datasource loads historical price bars for the backtest CLI.
package datasource

import (
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
)

// DataSource provides ordered historical bars from a backing file.
type DataSource interface {
	// Initialize points the data source at a market data file.
	Initialize(path string) error
	// Count returns the number of bars available.
	Count() (int, error)
	// ReadAll returns every bar, ascending by time.
	ReadAll() ([]types.Bar, error)
	// ReadLastN returns the most recent n bars, ascending by time. When
	// fewer than n bars are available it returns what exists alongside an
	// InsufficientDataError.
	ReadLastN(n int) ([]types.Bar, error)
	// Close releases the underlying resources.
	Close() error
}
