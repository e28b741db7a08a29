package timeseries

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNoData is returned when a CSV source holds no parseable observations.
var ErrNoData = errors.New("timeseries: no valid data found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "y")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads an observation series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return series, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads an observation series from an io.Reader.
// Rows with empty, NA, NaN or null values are skipped. Any other value that
// does not parse as a number is an error.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "skip rows")
		}
	}

	valueIdx, dateIdx := 0, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		valueIdx, dateIdx = headerColumns(header, opts)
	}

	var (
		values     []float64
		timestamps []time.Time
		line       = 0
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record")
		}
		line++

		if valueIdx >= len(record) {
			continue
		}
		valStr := clean(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(clean(record[dateIdx]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	series := New(values)
	series.Name = opts.ValueColumn
	if len(timestamps) == len(values) {
		series.Timestamps = timestamps
	}
	return series, nil
}

// headerColumns resolves the value and date column indices from a header row.
// Without an explicit match the last column holds the values.
func headerColumns(header []string, opts *CSVOptions) (valueIdx, dateIdx int) {
	valueIdx, dateIdx = -1, -1
	for i, h := range header {
		h = clean(h)
		switch {
		case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value")):
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case opts.DateColumn == "" && (h == "ds" || h == "date" || h == "Date"):
			if dateIdx == -1 {
				dateIdx = i
			}
		}
	}
	if valueIdx == -1 {
		valueIdx = len(header) - 1
	}
	return valueIdx, dateIdx
}

func parseDate(s, preferred string) (time.Time, bool) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006/01/02",
		"01/02/2006",
	}
	for _, layout := range formats {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// SaveCSV writes a series to w as "ds,y" rows when timestamps are present,
// otherwise as a single "y" column.
func SaveCSV(w io.Writer, series *Series) error {
	writer := csv.NewWriter(w)

	withDates := series.HasTimestamps()
	header := []string{"y"}
	if withDates {
		header = []string{"ds", "y"}
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i, v := range series.Values {
		value := strconv.FormatFloat(v, 'f', -1, 64)
		row := []string{value}
		if withDates {
			row = []string{series.Timestamps[i].Format(time.RFC3339), value}
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}
