package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// FormatFromFilename picks the input format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ParseHierarchy reads the entity hierarchy table.
func ParseHierarchy(r io.Reader, format Format) ([]domain.Entity, error) {
	table, err := readTable(r, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	entities, err := decodeHierarchy(table)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: %w", err)
	}
	return entities, nil
}

// ParseTransactions reads the general-ledger table.
func ParseTransactions(r io.Reader, format Format) ([]domain.TransactionRow, error) {
	table, err := readTable(r, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	rows, err := decodeTransactions(table)
	if err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}
	return rows, nil
}

func LoadHierarchy(path string) ([]domain.Entity, error) {
	format, f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseHierarchy(f, format)
}

func LoadTransactions(path string) ([]domain.TransactionRow, error) {
	format, f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseTransactions(f, format)
}

func open(path string) (Format, *os.File, error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return "", nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return format, f, nil
}

func readTable(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		return readDelimited(r, ',')
	case FormatTSV:
		return readDelimited(r, '\t')
	case FormatXLSX:
		return readWorkbook(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func readDelimited(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	return cr.ReadAll()
}

// readWorkbook returns the rows of the first sheet.
func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
