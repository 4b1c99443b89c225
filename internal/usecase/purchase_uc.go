// File: internal/usecase/purchase_uc.go
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/adapter"
	"membership-credits/internal/infra/metrics"
)

// Compile-time check
var _ PurchaseUseCase = (*purchaseUC)(nil)

type PurchaseUseCase interface {
	// Submit validates rawAmount, locates the eligible credit product, creates
	// exactly one invoice through the invoicing collaborator, and returns the
	// payment redirect path ("/pay/<secureID>").
	//
	// Error taxonomy: domain.ErrInvalidAmount is user-recoverable (re-render
	// the form); domain.ErrNoEligibleProduct and *domain.InvoiceValidationError
	// are operator-facing misconfigurations and must propagate loudly.
	// Repeated submissions are not deduplicated.
	Submit(ctx context.Context, user *model.User, rawAmount string) (string, error)
}

type purchaseUC struct {
	credits   CreditsUseCase
	invoicing adapter.Invoicing
	log       *zerolog.Logger
}

func NewPurchaseUseCase(credits CreditsUseCase, invoicing adapter.Invoicing, logger *zerolog.Logger) *purchaseUC {
	return &purchaseUC{credits: credits, invoicing: invoicing, log: logger}
}

// ParseAmount parses a purchase quantity with strict round-trip semantics:
// the canonical string form of the parsed integer must equal the input.
// "10" passes; "10.5", "010", "+3", " 3" and "" do not.
func ParseAmount(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != raw {
		return 0, domain.ErrInvalidAmount
	}
	return n, nil
}

func (u *purchaseUC) Submit(ctx context.Context, user *model.User, rawAmount string) (string, error) {
	qty, err := ParseAmount(rawAmount)
	if err != nil {
		metrics.IncPurchase(metrics.PurchaseInvalidInput)
		return "", err
	}

	product, err := u.credits.FindCreditProduct(ctx)
	if err != nil {
		metrics.IncPurchase(metrics.PurchaseError)
		return "", err
	}
	if product == nil {
		// Configured but no matching product: a billing setup bug that must
		// not be silently swallowed.
		metrics.IncPurchase(metrics.PurchaseNoProduct)
		u.log.Error().Int64("credits_per_dollar", u.credits.CreditsPerDollar()).
			Msg("no eligible credit product in catalog")
		return "", domain.ErrNoEligibleProduct
	}

	inv := u.invoicing.New(user, product, qty)
	if msgs := u.invoicing.Validate(ctx, inv); len(msgs) > 0 {
		metrics.IncPurchase(metrics.PurchaseValidationFailed)
		return "", &domain.InvoiceValidationError{Messages: msgs}
	}
	u.invoicing.Calculate(inv)

	start := time.Now()
	if err := u.invoicing.Insert(ctx, inv); err != nil {
		metrics.IncPurchase(metrics.PurchaseError)
		return "", fmt.Errorf("insert invoice: %w", err)
	}
	metrics.ObserveInvoiceInsert(time.Since(start))
	metrics.IncPurchase(metrics.PurchaseCreated)

	u.log.Info().Str("invoice_id", inv.ID).Str("user_id", user.ID).
		Int64("qty", qty).Int64("total_cents", inv.TotalCents).
		Msg("credit purchase invoice created")
	return "/pay/" + inv.SecureID, nil
}
