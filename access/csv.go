package access

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
)

// NullHeader is the header cell substituted for a column whose label the
// database reports as missing or empty. Plain CSV parsers reject empty
// header cells, and mapping rules cannot reference an unnamed column
// anyway. The token is long enough that no real column name collides with
// it, and data rows never produce it naturally.
const NullHeader = "github.com/cognizone/rmlmapper-go/access.nullheader"

// rowScanner is the subset of sql.Rows the CSV conversion consumes.
// Closing the rows stays with the caller.
type rowScanner interface {
	ColumnTypes() ([]*sql.ColumnType, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// writeCSV converts a result set to CSV text on w: one header row built
// from the column labels, then one record per row in result order. It
// returns the datatype map, keyed by the raw column label and filled during
// the first data row only; an empty result set yields an empty map. Values
// are read as text, with NULL passing through as the empty string.
func writeCSV(w io.Writer, rows rowScanner) (map[string]string, error) {
	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column metadata: %w", err)
	}

	header := make([]string, len(cols))
	coltypes := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name()
		if header[i] == "" {
			header[i] = NullHeader
		}
		coltypes[i] = columnDataType(col.DatabaseTypeName())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	datatypes := make(map[string]string, len(cols))
	raw := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}

	record := make([]string, len(cols))
	first := true
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if first {
			for i, col := range cols {
				if coltypes[i] != "" {
					datatypes[col.Name()] = coltypes[i]
				}
			}
			first = false
		}
		for i := range raw {
			record[i] = normalizeValue(raw[i].String, coltypes[i])
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("write record: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result set: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return datatypes, nil
}
