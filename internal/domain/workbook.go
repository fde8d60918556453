package domain

// Sheet is a read-only handle into one table of a decoded workbook.
// Rows and columns are addressed by 1-based position, matching spreadsheet
// conventions, so positions returned by header validation can be used
// directly for later cell lookups.
type Sheet interface {
	// Name returns the sheet name as it appears in the workbook
	Name() string

	// Row returns the row at the given 1-based position, or nil if the row does not exist
	Row(number int) []string

	// RowCount returns the number of rows in the sheet
	RowCount() int
}

// Workbook is a read-only handle into a decoded tabular file, containing
// zero or more sheets in workbook order
type Workbook interface {
	// SheetCount returns the number of sheets in the workbook
	SheetCount() int

	// Sheet returns the sheet at the given 1-based position, or nil if out of range
	Sheet(number int) Sheet
}
