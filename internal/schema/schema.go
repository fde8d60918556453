// Package schema names the header columns each record source must provide
// and tolerates known alternative spellings of them.
package schema

import (
	"strings"

	"github.com/tirasundara/ingestion-service/internal/domain"
)

// ColumnSet describes the named columns a tabular source must provide.
// Aliases map alternative header spellings to their canonical required name,
// so exports from systems with drifting header conventions still validate.
type ColumnSet struct {
	Name     string
	Required []string
	Aliases  map[string]string
}

// Transactions is the column set expected of transaction exports
var Transactions = ColumnSet{
	Name:     "transactions",
	Required: []string{"unique_identifier", "amount", "date"},
	Aliases: map[string]string{
		"id":               "unique_identifier",
		"transaction_id":   "unique_identifier",
		"trxID":            "unique_identifier",
		"value":            "amount",
		"transaction_date": "date",
		"posted_at":        "date",
	},
}

// Canonicalize returns a sheet whose header row cells are rewritten to
// canonical column names wherever the trimmed text matches a known alias.
// All other rows, and header cells with no alias, pass through untouched.
func (cs ColumnSet) Canonicalize(sheet domain.Sheet, headerRowNumber int) domain.Sheet {
	return &aliasedSheet{
		Sheet:     sheet,
		headerRow: headerRowNumber,
		aliases:   cs.Aliases,
	}
}

// aliasedSheet decorates a sheet, rewriting alias spellings in the header row
type aliasedSheet struct {
	domain.Sheet
	headerRow int
	aliases   map[string]string
}

func (s *aliasedSheet) Row(number int) []string {
	row := s.Sheet.Row(number)
	if number != s.headerRow || row == nil {
		return row
	}

	out := make([]string, len(row))
	for i, cell := range row {
		if canonical, ok := s.aliases[strings.TrimSpace(cell)]; ok {
			out[i] = canonical
			continue
		}
		out[i] = cell
	}
	return out
}
