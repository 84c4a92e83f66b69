package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	in := strings.NewReader("Title,Price,Image\nWidget,9.99,https://cdn.example.com/w.jpg\nGadget,4.50,\n")

	table, err := Parse("products.csv", in)
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Price", "Image"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Widget", table.Rows[0]["Title"])
	assert.Equal(t, "9.99", table.Rows[0]["Price"])
	assert.Equal(t, "", table.Rows[1]["Image"])
}

func TestParseCSVRaggedRows(t *testing.T) {
	in := strings.NewReader("a,b,c\n1,2\n1,2,3,4\n")

	table, err := Parse("ragged.csv", in)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Short rows pad with empty strings, long rows truncate: every row
	// carries exactly the header key set.
	assert.Equal(t, Row{"a": "1", "b": "2", "c": ""}, table.Rows[0])
	assert.Equal(t, Row{"a": "1", "b": "2", "c": "3"}, table.Rows[1])
}

func TestParseCSVStripsBOM(t *testing.T) {
	in := strings.NewReader("\xef\xbb\xbfTitle,Price\nWidget,1\n")

	table, err := Parse("bom.csv", in)
	require.NoError(t, err)
	assert.Equal(t, "Title", table.Headers[0])
}

func TestParseTSV(t *testing.T) {
	in := strings.NewReader("Title\tPrice\nWidget\t9.99\n")

	table, err := Parse("products.tsv", in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Price"}, table.Headers)
	assert.Equal(t, "9.99", table.Rows[0]["Price"])
}

func TestParseEmptyFile(t *testing.T) {
	table, err := Parse("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse("report.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Title", "Price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Widget", "9.99"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Gadget"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := Parse("products.xlsx", &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Price"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Widget", table.Rows[0]["Title"])
	assert.Equal(t, "", table.Rows[1]["Price"], "missing trailing cells pad to empty")
}
