package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"membership-credits/internal/domain/model"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func eligibleProduct(creditValue int64) *model.Product {
	return &model.Product{
		ID:              uuid.NewString(),
		Title:           "$1 Credit",
		RebillTimes:     0,
		VariableQty:     true,
		FirstPriceCents: 100,
		CreditValue:     creditValue,
		CreatedAt:       time.Now(),
	}
}

func TestCreditsUseCase_DollarBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := newMemLedgerRepo()
	ledger.balances["u1"] = 500
	ledger.balances["u2"] = 50

	uc := NewCreditsUseCase(100, ledger, newMemProductRepo(), newTestLogger())

	got, err := uc.DollarBalance(ctx, "u1")
	if err != nil {
		t.Fatalf("DollarBalance returned error: %v", err)
	}
	if got != 5.0 {
		t.Fatalf("expected balance 5.0, got %v", got)
	}

	// Real division, not floored: 50 credits at 40/dollar is $1.25.
	uc.Reload(40)
	got, err = uc.DollarBalance(ctx, "u2")
	if err != nil {
		t.Fatalf("DollarBalance returned error: %v", err)
	}
	if got != 1.25 {
		t.Fatalf("expected balance 1.25, got %v", got)
	}
}

func TestCreditsUseCase_NotConfigured(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := newMemLedgerRepo()
	ledger.balances["u1"] = 500
	products := newMemProductRepo(eligibleProduct(100))

	// Zero ratio
	uc := NewCreditsUseCase(0, ledger, products, newTestLogger())
	if uc.IsConfigured() {
		t.Fatalf("expected not configured with ratio 0")
	}
	if b, _ := uc.DollarBalance(ctx, "u1"); b != 0 {
		t.Fatalf("expected balance 0 when unconfigured, got %v", b)
	}
	if p, _ := uc.FindCreditProduct(ctx); p != nil {
		t.Fatalf("expected nil product when unconfigured, got %+v", p)
	}

	// Ledger collaborator absent
	uc = NewCreditsUseCase(100, nil, products, newTestLogger())
	if uc.IsConfigured() {
		t.Fatalf("expected not configured without ledger")
	}
	if b, _ := uc.DollarBalance(ctx, "u1"); b != 0 {
		t.Fatalf("expected balance 0 without ledger, got %v", b)
	}
	if p, _ := uc.FindCreditProduct(ctx); p != nil {
		t.Fatalf("expected nil product without ledger, got %+v", p)
	}
}

func TestCreditsUseCase_FindCreditProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recurring := eligibleProduct(100)
	recurring.RebillTimes = 1
	fixedQty := eligibleProduct(100)
	fixedQty.VariableQty = false
	wrongPrice := eligibleProduct(100)
	wrongPrice.FirstPriceCents = 500
	wrongCredits := eligibleProduct(50)
	match := eligibleProduct(100)

	products := newMemProductRepo(recurring, fixedQty, wrongPrice, wrongCredits, match)
	uc := NewCreditsUseCase(100, newMemLedgerRepo(), products, newTestLogger())

	got, err := uc.FindCreditProduct(ctx)
	if err != nil {
		t.Fatalf("FindCreditProduct returned error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a product, got nil")
	}
	if got.ID != match.ID {
		t.Fatalf("expected product %s, got %s", match.ID, got.ID)
	}
}

func TestCreditsUseCase_FindCreditProduct_FirstMatchWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := eligibleProduct(100)
	second := eligibleProduct(100)

	uc := NewCreditsUseCase(100, newMemLedgerRepo(), newMemProductRepo(first, second), newTestLogger())
	got, err := uc.FindCreditProduct(ctx)
	if err != nil {
		t.Fatalf("FindCreditProduct returned error: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("expected first eligible product %s, got %+v", first.ID, got)
	}
}

func TestCreditsUseCase_FindCreditProduct_NoMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wrong := eligibleProduct(50)
	uc := NewCreditsUseCase(100, newMemLedgerRepo(), newMemProductRepo(wrong), newTestLogger())

	got, err := uc.FindCreditProduct(ctx)
	if err != nil {
		t.Fatalf("FindCreditProduct returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil when no product matches, got %+v", got)
	}
}

func TestCreditsUseCase_History(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := newMemLedgerRepo()
	now := time.Now()
	_ = ledger.Add(ctx, nil, &model.LedgerEntry{UserID: "u1", Value: 500, Comment: "purchase", OccurredAt: now.Add(-time.Hour)})
	_ = ledger.Add(ctx, nil, &model.LedgerEntry{UserID: "u1", Value: -120, Comment: "usage", OccurredAt: now})

	uc := NewCreditsUseCase(100, ledger, newMemProductRepo(), newTestLogger())
	entries, err := uc.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Comment != "usage" {
		t.Fatalf("expected newest entry first, got %q", entries[0].Comment)
	}
}

func TestFormatCredits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value int64
		ratio int64
		want  string
	}{
		{500, 100, "$5.00"},
		{-120, 100, "$-1.20"},
		{50, 40, "$1.25"},
		{1, 3, "$0.33"},
		{0, 100, "$0.00"},
		{500, 0, "$0.00"}, // unconfigured ratio degrades to zero
	}
	for _, c := range cases {
		if got := FormatCredits(c.value, c.ratio); got != c.want {
			t.Fatalf("FormatCredits(%d, %d) = %q, want %q", c.value, c.ratio, got, c.want)
		}
	}
}
