package workbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tirasundara/ingestion-service/internal/header"
	"github.com/tirasundara/ingestion-service/internal/workbook"
	"github.com/tirasundara/ingestion-service/pkg/fileutil"
)

// buildXLSX writes rows into the first sheet of a fresh workbook and returns
// the encoded file bytes
func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestLoadAndValidate(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"ID", "Name", "", "Email"},
		{"1", "Alice", "", "alice@example.com"},
	})

	positions, err := workbook.LoadAndValidate(buf, []string{"Name", "Email"}, 1)

	require.NoError(t, err)
	assert.Equal(t, header.Positions{"Name": 2, "Email": 4}, positions)
}

func TestLoadAndValidate_MissingHeaders(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"ID", "Name"},
	})

	_, err := workbook.LoadAndValidate(buf, []string{"Name", "Phone"}, 1)

	var missingErr *header.MissingHeadersError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"Phone"}, missingErr.Missing)
	assert.Equal(t, []string{"ID", "Name"}, missingErr.Found)
}

func TestLoadAndValidate_UndecodableBuffer(t *testing.T) {
	_, err := workbook.LoadAndValidate([]byte("definitely not a zip archive"), []string{"Name"}, 1)

	var decodeErr *header.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Error(t, decodeErr.Err)
}

func TestValidateFirstSheet_NoSheets(t *testing.T) {
	wb := workbook.NewWorkbook()

	_, err := workbook.ValidateFirstSheet(wb, []string{"Name"}, 1)

	var missingSheet *header.MissingSheetError
	require.ErrorAs(t, err, &missingSheet)
}

func TestValidateFirstSheet_UsesFirstSheetOnly(t *testing.T) {
	first := workbook.NewSheet("first", [][]string{{"ID", "Name"}})
	second := workbook.NewSheet("second", [][]string{{"Phone"}})
	wb := workbook.NewWorkbook(first, second)

	_, err := workbook.ValidateFirstSheet(wb, []string{"Phone"}, 1)

	var missingErr *header.MissingHeadersError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"ID", "Name"}, missingErr.Found)
}

func TestDecodeCSV(t *testing.T) {
	wb, err := workbook.DecodeCSV([]byte("id,name\n1,Alice\n2,Bob\n"))

	require.NoError(t, err)
	require.Equal(t, 1, wb.SheetCount())

	sheet := wb.Sheet(1)
	assert.Equal(t, "csv", sheet.Name())
	assert.Equal(t, 3, sheet.RowCount())
	assert.Equal(t, []string{"id", "name"}, sheet.Row(1))
	assert.Equal(t, []string{"2", "Bob"}, sheet.Row(3))
}

func TestDecodeCSV_RaggedRows(t *testing.T) {
	wb, err := workbook.DecodeCSV([]byte("id,name,email\n1,Alice\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "Alice"}, wb.Sheet(1).Row(2))
}

func TestDecodeCSV_MalformedQuoting(t *testing.T) {
	_, err := workbook.DecodeCSV([]byte("id,\"unterminated\n1,2\n"))

	var decodeErr *header.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_FormatSwitch(t *testing.T) {
	xlsxBuf := buildXLSX(t, [][]interface{}{{"ID"}})

	wb, err := workbook.Decode(xlsxBuf, fileutil.FormatXLSX)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, wb.SheetCount(), 1)

	wb, err = workbook.Decode([]byte("ID\n1\n"), fileutil.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, wb.SheetCount())

	_, err = workbook.Decode(nil, fileutil.Format("parquet"))
	var decodeErr *header.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestSheet_RowAddressingIsOneBased(t *testing.T) {
	sheet := workbook.NewSheet("Sheet1", [][]string{
		{"ID", "Name"},
		{"1", "Alice"},
	})

	assert.Nil(t, sheet.Row(0))
	assert.Equal(t, []string{"ID", "Name"}, sheet.Row(1))
	assert.Equal(t, []string{"1", "Alice"}, sheet.Row(2))
	assert.Nil(t, sheet.Row(3))
}

func TestWorkbook_SheetAddressingIsOneBased(t *testing.T) {
	sheet := workbook.NewSheet("only", nil)
	wb := workbook.NewWorkbook(sheet)

	assert.Nil(t, wb.Sheet(0))
	assert.Equal(t, sheet, wb.Sheet(1))
	assert.Nil(t, wb.Sheet(2))
}
