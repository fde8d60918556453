// Package header validates that a sheet's header row contains a required set
// of column names, mapping each name to its 1-based column position.
package header

import (
	"strings"

	"github.com/tirasundara/ingestion-service/internal/domain"
)

// Positions maps a required header name to its 1-based column position.
// It contains exactly the names that were required; headers present in the
// row but not required are discarded.
type Positions map[string]int

// Validate checks that every name in requiredHeaders appears in the sheet's
// header row and returns the position of each. Matching is exact and
// case-sensitive against the trimmed cell text. Empty cells are not headers.
// When the same name appears in more than one column, the highest column
// position wins.
func Validate(sheet domain.Sheet, requiredHeaders []string, headerRowNumber int) (Positions, error) {
	row := sheet.Row(headerRowNumber)

	index := make(map[string]int)
	var found []string
	for i, cell := range row {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		if _, seen := index[text]; !seen {
			found = append(found, text)
		}
		index[text] = i + 1 // last occurrence wins
	}

	if len(index) == 0 {
		return nil, &MissingHeaderRowError{RowNumber: headerRowNumber}
	}

	positions := make(Positions, len(requiredHeaders))
	var missing []string
	for _, name := range requiredHeaders {
		pos, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		positions[name] = pos
	}

	if len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing, Found: found}
	}

	return positions, nil
}
