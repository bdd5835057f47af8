package repo

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonf08/building-metrics.git/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	extCSV  = ".csv"
	extXLSX = ".xlsx"
)

var _ Source = (*FileSource)(nil)

// FileSource loads records from a CSV file or the first sheet of an XLSX workbook.
type FileSource struct {
	path string
}

// NewFileSource creates a file source, the format is chosen by the file extension.
func NewFileSource(path string) (*FileSource, error) {
	if _, err := tableReader(path); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	return &FileSource{path: path}, nil
}

// Load reads and parses the whole file.
func (fs *FileSource) Load(_ context.Context) ([]models.MetricRecord, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		return nil, &LoadError{Source: fs.path, Err: err}
	}
	defer f.Close()

	records, err := readTable(fs.path, f)
	if err != nil {
		return nil, &LoadError{Source: fs.path, Err: err}
	}

	return records, nil
}

type readRowsFunc func(io.Reader) ([][]string, error)

func tableReader(name string) (readRowsFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case extCSV:
		return readCSV, nil
	case extXLSX:
		return readXLSX, nil
	default:
		return nil, fmt.Errorf("unsupported file format %q", ext)
	}
}

// readTable parses r according to the extension of name.
func readTable(name string, r io.Reader) ([]models.MetricRecord, error) {
	read, err := tableReader(name)
	if err != nil {
		return nil, err
	}

	rows, err := read(r)
	if err != nil {
		return nil, err
	}

	return parseTable(rows)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr.ReadAll()
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return f.GetRows(sheet)
}
