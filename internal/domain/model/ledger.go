package model

import "time"

// LedgerEntry is a single credit transaction for a user. The credit ledger
// owns and persists these rows; this service only reads and renders them.
type LedgerEntry struct {
	ID         int64
	UserID     string // UUID
	Value      int64  // signed credits; negative for spend
	Comment    string
	OccurredAt time.Time
}
