// internal/app/system/csvutil/colleges.go
package csvutil

import (
	"encoding/csv"
	"io"
	"strings"
)

// CollegeCSVRow is the normalized row produced by PreScanCollegesCSV.
type CollegeCSVRow struct {
	Name     string
	Location string
}

// RowError describes one rejected row.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// PreScanCollegesCSV reads all rows from r, tolerates a UTF-8 BOM and an
// optional header, and returns normalized rows plus per-row errors. It
// never writes to a DB; it's safe to call before any mutations.
//
// Expected columns: name, location. Extra columns are ignored.
func PreScanCollegesCSV(r io.Reader) (rows []CollegeCSVRow, rowErrs []RowError, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0
	for {
		rec, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		line++
		if rerr != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: rerr.Error()})
			continue
		}
		if len(rec) == 0 {
			continue
		}

		name := strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff"))
		location := ""
		if len(rec) > 1 {
			location = strings.TrimSpace(rec[1])
		}

		// Header detection: only the first row, only on recognized labels.
		if line == 1 && (strings.EqualFold(name, "name") || strings.EqualFold(name, "college")) {
			continue
		}
		if name == "" && location == "" {
			continue
		}
		if name == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "missing college name"})
			continue
		}
		if len(rows) >= MaxRows {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "row limit exceeded"})
			break
		}

		rows = append(rows, CollegeCSVRow{Name: name, Location: location})
	}
	return rows, rowErrs, nil
}
