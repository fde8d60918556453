// Package workbook decodes tabular file buffers into sheet handles and
// validates their header rows.
package workbook

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tirasundara/ingestion-service/internal/domain"
	"github.com/tirasundara/ingestion-service/internal/header"
	"github.com/tirasundara/ingestion-service/pkg/fileutil"
)

// DecodeXLSX decodes an xlsx workbook from buf, materializing every sheet's rows
func DecodeXLSX(buf []byte) (domain.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, wrapDecode(err)
	}
	defer f.Close()

	var sheets []domain.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, wrapDecode(fmt.Errorf("reading sheet %q: %w", name, err))
		}
		sheets = append(sheets, NewSheet(name, rows))
	}

	return NewWorkbook(sheets...), nil
}

// DecodeCSV decodes a CSV buffer as a workbook with a single sheet named "csv"
func DecodeCSV(buf []byte) (domain.Workbook, error) {
	reader := csv.NewReader(bytes.NewReader(buf))
	reader.FieldsPerRecord = -1 // Sheets may have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, wrapDecode(err)
	}

	return NewWorkbook(NewSheet("csv", rows)), nil
}

// Decode decodes buf according to the detected file format
func Decode(buf []byte, format fileutil.Format) (domain.Workbook, error) {
	switch format {
	case fileutil.FormatXLSX:
		return DecodeXLSX(buf)
	case fileutil.FormatCSV:
		return DecodeCSV(buf)
	default:
		return nil, &header.DecodeError{Err: fmt.Errorf("unsupported file format: %s", format)}
	}
}

// ValidateFirstSheet validates the header row of the workbook's first sheet.
// It fails when the workbook has no sheets; otherwise the result of the
// header validation is returned unchanged.
func ValidateFirstSheet(wb domain.Workbook, requiredHeaders []string, headerRowNumber int) (header.Positions, error) {
	if wb.SheetCount() == 0 {
		return nil, &header.MissingSheetError{}
	}
	return header.Validate(wb.Sheet(1), requiredHeaders, headerRowNumber)
}

// LoadAndValidate decodes an xlsx workbook from buf and validates the header
// row of its first sheet, returning the position of every required column
func LoadAndValidate(buf []byte, requiredHeaders []string, headerRowNumber int) (header.Positions, error) {
	wb, err := DecodeXLSX(buf)
	if err != nil {
		return nil, err
	}
	return ValidateFirstSheet(wb, requiredHeaders, headerRowNumber)
}

// wrapDecode classifies a failure from the decoding layer: errors already
// raised as validation errors pass through untouched, anything else is
// wrapped as a decode failure
func wrapDecode(err error) error {
	if header.IsValidationError(err) {
		return err
	}
	return &header.DecodeError{Err: err}
}
