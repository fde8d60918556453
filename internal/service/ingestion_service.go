package service

import (
	"fmt"
	"sort"

	"github.com/tirasundara/ingestion-service/internal/domain"
)

// IngestionService orchestrates header validation and transaction import
// across one or more sources
type IngestionService struct {
	repos      map[string]domain.TransactionRepository
	concurrent bool
}

// NewIngestionService creates a new IngestionService
func NewIngestionService(repos map[string]domain.TransactionRepository, concurrent bool) *IngestionService {
	return &IngestionService{
		repos:      repos,
		concurrent: concurrent,
	}
}

// Ingest validates and imports every source, aggregating per-source reports.
// Sources are processed in identifier order so reports are stable.
func (s *IngestionService) Ingest() (domain.IngestResult, error) {
	var result domain.IngestResult

	sourceIDs := make([]string, 0, len(s.repos))
	for sourceID := range s.repos {
		sourceIDs = append(sourceIDs, sourceID)
	}
	sort.Strings(sourceIDs)

	for _, sourceID := range sourceIDs {
		repo := s.repos[sourceID]

		columns, err := repo.ColumnPositions()
		if err != nil {
			return domain.IngestResult{}, fmt.Errorf("source %s: %w", sourceID, err)
		}

		txns, err := s.getTransactions(repo)
		if err != nil {
			return domain.IngestResult{}, fmt.Errorf("source %s: %w", sourceID, err)
		}

		result.Sources = append(result.Sources, domain.SourceReport{
			SourceID:     sourceID,
			Columns:      columns,
			RowsImported: len(txns),
		})
		result.Transactions = append(result.Transactions, txns...)
		result.TotalRowsImported += len(txns)
	}

	return result, nil
}

func (s *IngestionService) getTransactions(repo domain.TransactionRepository) ([]domain.Transaction, error) {
	if s.concurrent {
		return repo.GetTransactionsConcurrently()
	}
	return repo.GetTransactions()
}
