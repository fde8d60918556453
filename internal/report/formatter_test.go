package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/ingestion-service/internal/domain"
	"github.com/tirasundara/ingestion-service/internal/report"
)

func sampleResult() domain.IngestResult {
	return domain.IngestResult{
		TotalRowsImported: 1,
		Sources: []domain.SourceReport{
			{
				SourceID:     "bank_statements",
				Columns:      map[string]int{"unique_identifier": 1, "amount": 2, "date": 3},
				RowsImported: 1,
			},
		},
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := report.NewJSONFormatter(false)

	output, err := formatter.Format(sampleResult())

	require.NoError(t, err)

	var decoded domain.IngestResult
	require.NoError(t, json.Unmarshal(output, &decoded))
	assert.Equal(t, sampleResult(), decoded)

	assert.Equal(t, "json", formatter.FileExtension())
}

func TestJSONFormatter_PrettyPrint(t *testing.T) {
	formatter := report.NewJSONFormatter(true)

	output, err := formatter.Format(sampleResult())

	require.NoError(t, err)
	assert.True(t, strings.Contains(string(output), "\n  "))
}
