package domain

// SourceReport describes the outcome of ingesting a single source
type SourceReport struct {
	SourceID     string         `json:"source_id"`
	Columns      map[string]int `json:"columns"` // Required column name -> 1-based position
	RowsImported int            `json:"rows_imported"`
}

// IngestResult contains the result of an ingestion run across all sources
type IngestResult struct {
	TotalRowsImported int            `json:"total_rows_imported"`
	Sources           []SourceReport `json:"sources"`
	Transactions      []Transaction  `json:"transactions,omitempty"`
}
