package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Column names expected in the source CSV header.
const (
	colCaseNumber = "Processo"
	colClass      = "Classe"
	colSubject    = "Assunto"
	colComarca    = "Comarca"
	colYear       = "Ano"
)

// Filing years outside this range are treated as missing.
const (
	minValidYear = 1900
	maxValidYear = 2100
)

// SourceUnavailableError indicates the record source could not be read or
// parsed at session start. DirEntries lists the contents of the directory the
// source was expected in, so a misdeployed file can be diagnosed without code
// changes.
type SourceUnavailableError struct {
	Path       string
	DirEntries []string
	Err        error
}

func (e *SourceUnavailableError) Error() string {
	if len(e.DirEntries) > 0 {
		return fmt.Sprintf("record source unavailable at %s: %v (directory contains: %s)",
			e.Path, e.Err, strings.Join(e.DirEntries, ", "))
	}
	return fmt.Sprintf("record source unavailable at %s: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// Parse reads CSV rows from r and returns the valid records.
//
// A row is dropped when its Processo field is blank after trimming; this is a
// structural validity check, not a business filter. The Ano field is coerced
// to an integer, accepting float-formatted text; coercion failure or a value
// outside [1900, 2100] leaves Year nil rather than dropping the row.
func Parse(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("source is empty: no header row")
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		caseNumber := strings.TrimSpace(field(row, cols[colCaseNumber]))
		if caseNumber == "" {
			continue
		}
		records = append(records, models.Record{
			CaseNumber: caseNumber,
			Class:      field(row, cols[colClass]),
			Subject:    field(row, cols[colSubject]),
			Comarca:    field(row, cols[colComarca]),
			Year:       parseYear(field(row, cols[colYear])),
		})
	}

	return records, nil
}

// LoadFile parses the CSV at path. Any failure is surfaced as a
// *SourceUnavailableError; the session cannot proceed without the source.
func LoadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sourceUnavailable(path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, sourceUnavailable(path, err)
	}
	return records, nil
}

func sourceUnavailable(path string, err error) *SourceUnavailableError {
	srcErr := &SourceUnavailableError{Path: path, Err: err}
	if entries, dirErr := os.ReadDir(filepath.Dir(path)); dirErr == nil {
		for _, entry := range entries {
			srcErr.DirEntries = append(srcErr.DirEntries, entry.Name())
		}
	}
	return srcErr
}

// columnIndex maps the required column names to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colCaseNumber, colClass, colSubject, colComarca, colYear} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("source is missing required column %q", required)
		}
	}
	return cols, nil
}

// field returns the value at index i, or "" when the row is short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseYear coerces a year field to an integer. The upstream export sometimes
// renders years as floats ("2020.0"), so integer parsing falls back to float.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		year = int(f)
	}
	if year < minValidYear || year > maxValidYear {
		return nil
	}
	return &year
}
