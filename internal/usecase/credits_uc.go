// File: internal/usecase/credits_uc.go
package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
	"membership-credits/internal/infra/metrics"
)

// Compile-time check
var _ CreditsUseCase = (*creditsUC)(nil)

type CreditsUseCase interface {
	// IsConfigured reports whether conversion and product lookup are enabled:
	// a positive credits-per-dollar ratio AND a reachable ledger collaborator.
	// All other operations degrade to an empty result when this is false.
	IsConfigured() bool
	// DollarBalance returns the user's ledger balance divided by the ratio,
	// as real-number division. Always reflects the ledger's live value.
	DollarBalance(ctx context.Context, userID string) (float64, error)
	// FindCreditProduct returns the first product, in catalog order, that is
	// eligible for $1-credit purchases, or nil when none matches or the
	// service is not configured.
	FindCreditProduct(ctx context.Context) (*model.Product, error)
	// History returns the user's ledger entries newest first.
	History(ctx context.Context, userID string) ([]*model.LedgerEntry, error)
	CreditsPerDollar() int64
	// Reload swaps the configured ratio. Each operation reads the ratio once,
	// so the value stays fixed for the duration of a request.
	Reload(creditsPerDollar int64)
}

type creditsUC struct {
	mu       sync.RWMutex
	ratio    int64
	ledger   repository.LedgerRepository // nil when the ledger collaborator is absent
	products repository.ProductRepository
	log      *zerolog.Logger
}

func NewCreditsUseCase(creditsPerDollar int64, ledger repository.LedgerRepository, products repository.ProductRepository, logger *zerolog.Logger) *creditsUC {
	return &creditsUC{ratio: creditsPerDollar, ledger: ledger, products: products, log: logger}
}

func (u *creditsUC) CreditsPerDollar() int64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.ratio
}

func (u *creditsUC) Reload(creditsPerDollar int64) {
	u.mu.Lock()
	u.ratio = creditsPerDollar
	u.mu.Unlock()
	u.log.Info().Int64("credits_per_dollar", creditsPerDollar).Msg("credits ratio reloaded")
}

func (u *creditsUC) IsConfigured() bool {
	return u.CreditsPerDollar() >= 1 && u.ledger != nil
}

func (u *creditsUC) DollarBalance(ctx context.Context, userID string) (float64, error) {
	ratio := u.CreditsPerDollar()
	if ratio < 1 || u.ledger == nil {
		return 0, nil
	}
	balance, err := u.ledger.Balance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("ledger balance: %w", err)
	}
	metrics.IncBalanceLookup()
	return float64(balance) / float64(ratio), nil
}

func (u *creditsUC) FindCreditProduct(ctx context.Context) (*model.Product, error) {
	ratio := u.CreditsPerDollar()
	if ratio < 1 || u.ledger == nil {
		return nil, nil
	}
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for _, p := range products {
		if p.EligibleForCreditPurchase(ratio) {
			return p, nil
		}
	}
	return nil, nil
}

func (u *creditsUC) History(ctx context.Context, userID string) ([]*model.LedgerEntry, error) {
	if u.ledger == nil {
		return nil, nil
	}
	entries, err := u.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger history: %w", err)
	}
	return entries, nil
}

// FormatCredits renders a raw ledger amount as a dollar string using the
// configured ratio, rounded to 2 decimal places. Pure; safe to call from any
// rendering layer.
func FormatCredits(value, creditsPerDollar int64) string {
	if creditsPerDollar < 1 {
		return "$0.00"
	}
	d := math.Round(float64(value)/float64(creditsPerDollar)*100) / 100
	return fmt.Sprintf("$%.2f", d)
}
