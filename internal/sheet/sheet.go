// Package sheet implements the client-side spreadsheet filter applied before
// an upload is forwarded to the backend. The backend does its own parsing;
// this only rejects obviously wrong files early and reports sheet names for
// immediate feedback.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedType = errors.New("only CSV and Excel files are supported")

// Info describes a sniffed spreadsheet.
type Info struct {
	Kind   string   // "csv", "xls" or "xlsx"
	Sheets []string // xlsx sheet names; nil otherwise
}

// Sniff checks the file extension and, where cheap, the content. XLSX files
// are opened with excelize to reject corrupt archives and list sheets; CSV
// files must yield a first record; XLS passes on extension alone (legacy
// format, left to the backend).
func Sniff(filename string, data []byte) (*Info, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return sniffCSV(data)
	case ".xlsx":
		return sniffXLSX(data)
	case ".xls":
		return &Info{Kind: "xls"}, nil
	default:
		return nil, ErrUnsupportedType
	}
}

func sniffCSV(data []byte) (*Info, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("unreadable CSV: %w", err)
	}
	if len(record) == 0 {
		return nil, errors.New("CSV file has no columns")
	}
	return &Info{Kind: "csv"}, nil
}

func sniffXLSX(data []byte) (*Info, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unreadable Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("Excel file has no sheets")
	}
	return &Info{Kind: "xlsx", Sheets: sheets}, nil
}
