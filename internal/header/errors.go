package header

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError indicates that an input buffer could not be decoded into a
// workbook. It wraps the decoding library's underlying diagnostic.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding workbook: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingSheetError indicates that a decoded workbook contains no sheets
type MissingSheetError struct{}

func (e *MissingSheetError) Error() string {
	return "workbook contains no sheets"
}

// MissingHeaderRowError indicates that the requested header row does not
// exist, or exists but has no non-empty cells
type MissingHeaderRowError struct {
	RowNumber int
}

func (e *MissingHeaderRowError) Error() string {
	return fmt.Sprintf("header row %d not found or contains no header cells", e.RowNumber)
}

// MissingHeadersError indicates that one or more required column names were
// not found in the header row. Missing holds the absent names in the order
// they were required; Found holds every distinct non-empty header text that
// was actually present, in column order.
type MissingHeadersError struct {
	Missing []string
	Found   []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("missing required headers: %s; headers found: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// IsValidationError reports whether err is (or wraps) one of the error kinds
// produced by this package. Callers use it to decide whether a failure
// crossing a component boundary is already classified, so it is never
// wrapped a second time.
func IsValidationError(err error) bool {
	var (
		decodeErr        *DecodeError
		missingSheet     *MissingSheetError
		missingHeaderRow *MissingHeaderRowError
		missingHeaders   *MissingHeadersError
	)

	return errors.As(err, &decodeErr) ||
		errors.As(err, &missingSheet) ||
		errors.As(err, &missingHeaderRow) ||
		errors.As(err, &missingHeaders)
}
