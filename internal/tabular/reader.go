package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a header string to the raw cell value for that column. Every
// row carries exactly the header key set; absent cells are empty strings.
type Row map[string]string

// Table is the decoded form of an uploaded spreadsheet or CSV. All cell
// coercion to string happens here, once; the pipeline never re-parses
// ambiguous scalars.
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse decodes an uploaded file into a Table based on its extension.
// Supported: .csv, .tsv, .xlsx.
func Parse(filename string, r io.Reader) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return parseDelimited(r, ',')
	case ".tsv":
		return parseDelimited(r, '\t')
	case ".xlsx":
		return parseWorkbook(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

func parseDelimited(r io.Reader, comma rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return &Table{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, toRow(headers, record))
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func parseWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}

	// First sheet only; multi-sheet workbooks are treated as one table.
	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, record := range raw[1:] {
		rows = append(rows, toRow(headers, record))
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// toRow pads or truncates a record to the header width so every row has
// the same key set as the header line.
func toRow(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(record) {
			row[h] = record[i]
		} else {
			row[h] = ""
		}
	}
	return row
}
