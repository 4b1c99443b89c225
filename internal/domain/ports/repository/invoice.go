package repository

import (
	"context"

	"membership-credits/internal/domain/model"
)

// InvoiceRepository persists invoices created by the invoicing collaborator.
type InvoiceRepository interface {
	// Save inserts the invoice and its items. When tx carries a pgx.Tx both
	// writes happen in that transaction.
	Save(ctx context.Context, tx Tx, inv *model.Invoice) error
	// FindBySecureID resolves the opaque payment-link token back to an invoice.
	FindBySecureID(ctx context.Context, secureID string) (*model.Invoice, error)
}
