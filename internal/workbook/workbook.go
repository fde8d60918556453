package workbook

import "github.com/tirasundara/ingestion-service/internal/domain"

// memorySheet holds one sheet's rows, fully materialized after decode
type memorySheet struct {
	name string
	rows [][]string
}

func (s *memorySheet) Name() string {
	return s.name
}

func (s *memorySheet) RowCount() int {
	return len(s.rows)
}

func (s *memorySheet) Row(number int) []string {
	if number < 1 || number > len(s.rows) {
		return nil
	}
	return s.rows[number-1]
}

// memoryWorkbook holds decoded sheets in workbook order
type memoryWorkbook struct {
	sheets []domain.Sheet
}

func (w *memoryWorkbook) SheetCount() int {
	return len(w.sheets)
}

func (w *memoryWorkbook) Sheet(number int) domain.Sheet {
	if number < 1 || number > len(w.sheets) {
		return nil
	}
	return w.sheets[number-1]
}

// NewSheet builds an in-memory sheet from raw rows. Row i of the slice
// becomes row i+1 of the sheet.
func NewSheet(name string, rows [][]string) domain.Sheet {
	return &memorySheet{name: name, rows: rows}
}

// NewWorkbook builds an in-memory workbook from already-materialized sheets
func NewWorkbook(sheets ...domain.Sheet) domain.Workbook {
	return &memoryWorkbook{sheets: sheets}
}
