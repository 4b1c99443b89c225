package adapter

import (
	"context"

	"membership-credits/internal/domain/model"
)

// Invoicing is the invoicing collaborator contract: build an invoice from
// (product, quantity, user), validate it, price it, and persist it. The
// secure payment-link token is assigned at construction time.
//
// The call sequence is New -> Validate -> Calculate -> Insert; there are no
// retries and no partial-failure semantics beyond what Insert's transaction
// provides.
type Invoicing interface {
	New(user *model.User, product *model.Product, qty int64) *model.Invoice
	// Validate returns collaborator validation messages; empty means valid.
	Validate(ctx context.Context, inv *model.Invoice) []string
	// Calculate finalizes line totals and the invoice total.
	Calculate(inv *model.Invoice)
	Insert(ctx context.Context, inv *model.Invoice) error
}
