// File: internal/infra/billing/invoicing.go
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/adapter"
	"membership-credits/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ adapter.Invoicing = (*Invoicing)(nil)

// Invoicing implements the invoicing collaborator on Postgres. Validation and
// pricing are local; Insert persists the invoice and its items in one
// transaction.
type Invoicing struct {
	invoices repository.InvoiceRepository
	tm       repository.TransactionManager
	log      *zerolog.Logger
}

func NewInvoicing(invoices repository.InvoiceRepository, tm repository.TransactionManager, logger *zerolog.Logger) *Invoicing {
	return &Invoicing{invoices: invoices, tm: tm, log: logger}
}

func (i *Invoicing) New(user *model.User, product *model.Product, qty int64) *model.Invoice {
	inv := &model.Invoice{
		ID:        uuid.NewString(),
		SecureID:  ulid.Make().String(),
		Status:    model.InvoiceStatusPending,
		CreatedAt: time.Now(),
	}
	if user != nil {
		inv.UserID = user.ID
	}
	if product != nil {
		inv.Items = append(inv.Items, model.InvoiceItem{
			ProductID:      product.ID,
			Description:    product.Title,
			Qty:            qty,
			UnitPriceCents: product.FirstPriceCents,
		})
	}
	return inv
}

func (i *Invoicing) Validate(ctx context.Context, inv *model.Invoice) []string {
	var msgs []string
	if inv.UserID == "" {
		msgs = append(msgs, "invoice has no user")
	}
	if len(inv.Items) == 0 {
		msgs = append(msgs, "invoice has no items")
	}
	for _, it := range inv.Items {
		if it.ProductID == "" {
			msgs = append(msgs, "invoice item has no product")
		}
		if it.Qty < 1 {
			msgs = append(msgs, "quantity must be at least 1")
		}
		if it.UnitPriceCents <= 0 {
			msgs = append(msgs, "unit price must be positive")
		}
	}
	return msgs
}

func (i *Invoicing) Calculate(inv *model.Invoice) {
	var total int64
	for idx := range inv.Items {
		it := &inv.Items[idx]
		it.TotalCents = it.Qty * it.UnitPriceCents
		total += it.TotalCents
	}
	inv.TotalCents = total
}

func (i *Invoicing) Insert(ctx context.Context, inv *model.Invoice) error {
	return i.tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		return i.invoices.Save(ctx, tx, inv)
	})
}
