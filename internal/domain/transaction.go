package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single transaction row imported from a sheet
type Transaction struct {
	UniqID   string          `json:"unique_identifier"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	SourceID string          `json:"source_id"` // Can use this identifier to track which file a transaction came from
}
