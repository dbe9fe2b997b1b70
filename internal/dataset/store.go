// Package dataset loads gas measurement tables from CSV files and exposes
// the date-part filtering the dashboard is built on.
//
// A gas name maps to its backing file by convention: data/<gas>.csv. The
// file must carry a `date` column plus the two measurement columns
// `Alt_Mean` and `std CO2`. Rows whose date fails to parse are dropped
// during load and never reach a chart.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"

	"atmodash.openclimate.org/internal/logging"
)

// ErrNotFound indicates that the requested gas has no backing CSV file.
var ErrNotFound = errors.New("no dataset file found")

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// Store loads gas tables from a data directory. Tables are read fresh on
// every Load call; nothing is cached between requests.
type Store struct {
	dataDir string
	logger  *slog.Logger
}

func NewStore(dataDir string, logger *slog.Logger) *Store {
	return &Store{dataDir: dataDir, logger: logger}
}

// Path returns the conventional file path for a gas.
func (s *Store) Path(gas string) string {
	return filepath.Join(s.dataDir, gas+".csv")
}

// Load reads the CSV for the given gas into a Table. It returns ErrNotFound
// when the backing file does not exist. Rows with unparseable dates are
// dropped silently; the drop count is only logged.
func (s *Store) Load(ctx context.Context, gas string) (*Table, error) {
	start := time.Now()

	file, err := os.Open(s.Path(gas))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w for %s", ErrNotFound, gas)
		}
		return nil, fmt.Errorf("opening dataset for %s: %w", gas, err)
	}
	defer logging.SafeCloseWithLogging(file, s.logger, "dataset_file")

	df := dataframe.ReadCSV(file)
	if df.Error() != nil {
		return nil, fmt.Errorf("reading dataset for %s: %w", gas, df.Error())
	}

	for _, col := range []string{"date", string(ColumnAltMean), string(ColumnStdCO2)} {
		if !hasColumn(df, col) {
			return nil, fmt.Errorf("dataset for %s is missing column %q", gas, col)
		}
	}

	dates := df.Col("date").Records()
	altMeans := df.Col(string(ColumnAltMean)).Float()
	stdCO2s := df.Col(string(ColumnStdCO2)).Float()

	rows := make([]Row, 0, len(dates))
	dropped := 0
	for i, raw := range dates {
		date, ok := parseDate(raw)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, Row{
			Date:    date,
			AltMean: altMeans[i],
			StdCO2:  stdCO2s[i],
		})
	}

	logging.LogOperation(logging.FromContext(ctx), "dataset_load",
		slog.String("gas", gas),
		slog.Int("rows", len(rows)),
		slog.Int("dropped", dropped),
		slog.Duration("duration", time.Since(start)))

	return &Table{Gas: gas, Rows: rows}, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
