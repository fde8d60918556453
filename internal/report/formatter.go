package report

import (
	"encoding/json"

	"github.com/tirasundara/ingestion-service/internal/domain"
)

// OutputFormatter defines the interface for formatting ingest results
type OutputFormatter interface {
	Format(result domain.IngestResult) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats ingest results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.IngestResult) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
