package domain

// TransactionRepository defines the interface for reading transactions out of a tabular source
type TransactionRepository interface {
	// GetTransactions reads all transaction rows below the header row
	GetTransactions() ([]Transaction, error)

	// GetTransactionsConcurrently is a concurrent version of GetTransactions()
	GetTransactionsConcurrently() ([]Transaction, error)

	// ColumnPositions returns the validated 1-based position of every required column
	ColumnPositions() (map[string]int, error)

	// SourceIdentifier returns source identifier
	SourceIdentifier() string
}
