package datasource

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/logger"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/internal/types"
	"github.com/FinanceSutra/FinanceSUTRA-sub002/pkg/errors"
)

// DuckDBDataSource reads CSV or Parquet market data files through an
// in-memory DuckDB instance. The file is exposed as a market_data view with
// time, open, high, low, close and volume columns.
type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource creates a DuckDB-backed data source.
func NewDuckDBDataSource(log *logger.Logger) (DataSource, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	return &DuckDBDataSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize creates the market_data view over the given CSV or Parquet
// file, replacing any previously loaded file.
func (d *DuckDBDataSource) Initialize(path string) error {
	d.logger.Debug("Initializing market data view", zap.String("path", path))

	var reader string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		reader = "read_parquet"
	case ".csv":
		reader = "read_csv_auto"
	default:
		return errors.Newf(errors.ErrCodeDataSourceUnavailable, "unsupported market data file type: %s", path)
	}

	if _, err := d.db.Exec(`DROP VIEW IF EXISTS market_data;`); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to drop existing view", err)
	}

	// CREATE VIEW is not expressible through squirrel, so raw SQL here.
	query := fmt.Sprintf(`
		CREATE VIEW market_data AS
		SELECT time, open, high, low, close, volume FROM %s('%s');
	`, reader, path)

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to load market data from %s", path)
	}

	return nil
}

// Count implements DataSource.
func (d *DuckDBDataSource) Count() (int, error) {
	query := d.sq.
		Select("COUNT(*)").
		From("market_data").
		RunWith(d.db)

	var count int
	if err := query.QueryRow().Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count market data rows", err)
	}

	return count, nil
}

// ReadAll implements DataSource.
func (d *DuckDBDataSource) ReadAll() ([]types.Bar, error) {
	query := d.sq.
		Select("time", "open", "high", "low", "close", "volume").
		From("market_data").
		OrderBy("time").
		RunWith(d.db)

	bars, err := scanBars(query)
	if err != nil {
		return nil, err
	}

	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeNoData, "market data file contains no bars")
	}

	return bars, nil
}

// ReadLastN implements DataSource. The most recent n bars are returned in
// ascending time order; a short file yields the bars that exist plus an
// InsufficientDataError.
func (d *DuckDBDataSource) ReadLastN(n int) ([]types.Bar, error) {
	if n <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "bar count must be positive, got %d", n)
	}

	query := d.sq.
		Select("time", "open", "high", "low", "close", "volume").
		From("market_data").
		OrderBy("time DESC").
		Limit(uint64(n)).
		RunWith(d.db)

	bars, err := scanBars(query)
	if err != nil {
		return nil, err
	}

	if len(bars) == 0 {
		return nil, errors.New(errors.ErrCodeNoData, "market data file contains no bars")
	}

	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}

	if len(bars) < n {
		return bars, errors.NewInsufficientDataErrorf(n, len(bars),
			"insufficient bars in market data: requested %d, got %d", n, len(bars))
	}

	return bars, nil
}

// scanBars runs a market_data select and scans the result rows.
func scanBars(query squirrel.SelectBuilder) ([]types.Bar, error) {
	rows, err := query.Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query market data", err)
	}
	defer rows.Close()

	var bars []types.Bar

	for rows.Next() {
		var bar types.Bar

		var volume sql.NullFloat64

		if err := rows.Scan(&bar.Time, &bar.Open, &bar.High, &bar.Low, &bar.Close, &volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan market data row", err)
		}

		bar.Volume = volume.Float64

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating market data rows", err)
	}

	return bars, nil
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	return d.db.Close()
}
