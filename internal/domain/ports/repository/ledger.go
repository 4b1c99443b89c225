package repository

import (
	"context"

	"membership-credits/internal/domain/model"
)

// LedgerRepository is the credit ledger collaborator contract. The ledger is
// append-only and owned externally; this service reads balances and history.
// A nil LedgerRepository means the ledger collaborator is unavailable, which
// puts the whole credits feature into its unconfigured mode.
type LedgerRepository interface {
	// Balance returns the sum of all ledger values for the user, in credits.
	Balance(ctx context.Context, userID string) (int64, error)
	// ListByUser returns the user's entries ordered by timestamp descending.
	ListByUser(ctx context.Context, userID string) ([]*model.LedgerEntry, error)
	// Add appends one entry. Used by seed tooling and by the payment layer
	// when granting purchased credits.
	Add(ctx context.Context, tx Tx, e *model.LedgerEntry) error
}
