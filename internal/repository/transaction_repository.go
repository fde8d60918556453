package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tirasundara/ingestion-service/internal/domain"
	"github.com/tirasundara/ingestion-service/internal/header"
	"github.com/tirasundara/ingestion-service/internal/schema"
)

// SheetTransactionRepository implements the TransactionRepository interface
// for an already-decoded sheet
type SheetTransactionRepository struct {
	Sheet      domain.Sheet
	SourceID   string
	DateFormat string
	HeaderRow  int
	NumWorkers int
	BatchSize  int
}

// NewSheetTransactionRepository creates a new SheetTransactionRepository.
// Known header aliases are resolved to canonical column names before any
// validation sees the sheet.
func NewSheetTransactionRepository(sheet domain.Sheet, sourceID, dateFormat string, headerRow int) *SheetTransactionRepository {
	if dateFormat == "" {
		dateFormat = "2006-01-02" // Default format
	}
	if headerRow == 0 {
		headerRow = 1
	}

	return &SheetTransactionRepository{
		Sheet:      schema.Transactions.Canonicalize(sheet, headerRow),
		SourceID:   sourceID,
		DateFormat: dateFormat,
		HeaderRow:  headerRow,
		NumWorkers: 4,    // Default to 4 workers
		BatchSize:  1000, // Default to 1000 rows per batch
	}
}

func (r *SheetTransactionRepository) SourceIdentifier() string {
	return r.SourceID
}

// ColumnPositions validates the sheet's header row and returns the 1-based
// position of every required transaction column
func (r *SheetTransactionRepository) ColumnPositions() (map[string]int, error) {
	positions, err := header.Validate(r.Sheet, schema.Transactions.Required, r.HeaderRow)
	if err != nil {
		return nil, fmt.Errorf("validating transaction headers: %w", err)
	}
	return positions, nil
}

// GetTransactions reads all transaction rows below the header row. Rows that
// are too short or fail to parse are skipped with a warning so one bad row
// never loses the rest of the file.
func (r *SheetTransactionRepository) GetTransactions() ([]domain.Transaction, error) {
	positions, err := r.ColumnPositions()
	if err != nil {
		return nil, err
	}

	maxPos := maxPosition(positions)

	var txns []domain.Transaction
	for n := r.HeaderRow + 1; n <= r.Sheet.RowCount(); n++ {
		txn, ok := r.parseRow(r.Sheet.Row(n), positions, maxPos)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// GetTransactionsConcurrently parses sheet rows concurrently, good for handling sheets with huge row counts
func (r *SheetTransactionRepository) GetTransactionsConcurrently() ([]domain.Transaction, error) {
	positions, err := r.ColumnPositions()
	if err != nil {
		return nil, err
	}

	maxPos := maxPosition(positions)

	// Set up concurrent processing
	jobs := make(chan [][]string, r.NumWorkers)
	results := make(chan []domain.Transaction, r.NumWorkers)

	// Start the worker pool
	var wg sync.WaitGroup
	r.startWorkers(&wg, jobs, results, positions, maxPos)

	// Close results channel when all workers are done
	go func() {
		wg.Wait()
		close(results)
	}()

	// Distribute batches of rows to workers
	go func() {
		defer close(jobs)

		batch := make([][]string, 0, r.BatchSize)
		for n := r.HeaderRow + 1; n <= r.Sheet.RowCount(); n++ {
			batch = append(batch, r.Sheet.Row(n))

			// When batch is full, send it to a worker
			if len(batch) >= r.BatchSize {
				jobs <- batch
				batch = make([][]string, 0, r.BatchSize)
			}
		}

		// Send any remaining rows in the last batch
		if len(batch) > 0 {
			jobs <- batch
		}
	}()

	// Collect results from workers
	var txns []domain.Transaction
	for batch := range results {
		txns = append(txns, batch...)
	}

	return txns, nil
}

// startWorkers creates a pool of worker goroutines to parse batches of sheet rows
func (r *SheetTransactionRepository) startWorkers(wg *sync.WaitGroup,
	jobs <-chan [][]string, results chan<- []domain.Transaction,
	positions header.Positions, maxPos int) {

	for i := 0; i < r.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for batch := range jobs {
				batchResults := make([]domain.Transaction, 0, len(batch))

				for _, row := range batch {
					txn, ok := r.parseRow(row, positions, maxPos)
					if !ok {
						continue // Resilient. We try to process as much row as possible
					}
					batchResults = append(batchResults, txn)
				}

				// Send the batch results if any transactions were found
				if len(batchResults) > 0 {
					results <- batchResults
				}
			}
		}()
	}
}

// parseRow converts one sheet row into a transaction. It returns false for
// rows that should be skipped.
func (r *SheetTransactionRepository) parseRow(row []string, positions header.Positions, maxPos int) (domain.Transaction, bool) {
	// Skip if row doesn't have enough cells
	if len(row) < maxPos {
		return domain.Transaction{}, false
	}

	cell := func(name string) string {
		return strings.TrimSpace(row[positions[name]-1])
	}

	txDate, err := time.Parse(r.DateFormat, cell("date"))
	if err != nil {
		// Log but continue processing other rows
		logrus.WithField("source", r.SourceID).Warnf("invalid date format: %v", err)
		return domain.Transaction{}, false
	}

	amount, err := decimal.NewFromString(cell("amount"))
	if err != nil {
		logrus.WithField("source", r.SourceID).Warnf("invalid amount format: %v", err)
		return domain.Transaction{}, false
	}

	return domain.Transaction{
		UniqID:   cell("unique_identifier"),
		Amount:   amount,
		Date:     txDate,
		SourceID: r.SourceID,
	}, true
}

// maxPosition returns the highest column position a row must reach to be usable
func maxPosition(positions header.Positions) int {
	maxPos := 0
	for _, pos := range positions {
		if pos > maxPos {
			maxPos = pos
		}
	}
	return maxPos
}
