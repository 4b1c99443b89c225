package web

import (
	"context"
	"sync"
	"time"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
	"membership-credits/internal/usecase"
)

// stubCredits implements usecase.CreditsUseCase with canned values.
type stubCredits struct {
	mu         sync.Mutex
	ratio      int64
	ledgerOK   bool
	balance    float64
	balanceErr error
	entries    []*model.LedgerEntry
	product    *model.Product
}

var _ usecase.CreditsUseCase = (*stubCredits)(nil)

func (s *stubCredits) IsConfigured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratio >= 1 && s.ledgerOK
}

func (s *stubCredits) DollarBalance(ctx context.Context, userID string) (float64, error) {
	if s.balanceErr != nil {
		return 0, s.balanceErr
	}
	return s.balance, nil
}

func (s *stubCredits) FindCreditProduct(ctx context.Context) (*model.Product, error) {
	return s.product, nil
}

func (s *stubCredits) History(ctx context.Context, userID string) ([]*model.LedgerEntry, error) {
	return s.entries, nil
}

func (s *stubCredits) CreditsPerDollar() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratio
}

func (s *stubCredits) Reload(creditsPerDollar int64) {
	s.mu.Lock()
	s.ratio = creditsPerDollar
	s.mu.Unlock()
}

// stubPurchase implements usecase.PurchaseUseCase via a function hook.
type stubPurchase struct {
	submitFn func(ctx context.Context, user *model.User, rawAmount string) (string, error)
	calls    int
}

var _ usecase.PurchaseUseCase = (*stubPurchase)(nil)

func (s *stubPurchase) Submit(ctx context.Context, user *model.User, rawAmount string) (string, error) {
	s.calls++
	return s.submitFn(ctx, user, rawAmount)
}

type memInvoiceRepo struct {
	bySecureID map[string]*model.Invoice
}

func (m *memInvoiceRepo) Save(ctx context.Context, tx repository.Tx, inv *model.Invoice) error {
	if m.bySecureID == nil {
		m.bySecureID = map[string]*model.Invoice{}
	}
	m.bySecureID[inv.SecureID] = inv
	return nil
}

func (m *memInvoiceRepo) FindBySecureID(ctx context.Context, secureID string) (*model.Invoice, error) {
	inv, ok := m.bySecureID[secureID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

type memUserRepo struct {
	byID map[string]*model.User
}

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) Save(ctx context.Context, u *model.User) error {
	if m.byID == nil {
		m.byID = map[string]*model.User{}
	}
	m.byID[u.ID] = u
	return nil
}

type memSessionRepo struct {
	byID map[string]string
}

func (m *memSessionRepo) Get(ctx context.Context, sid string) (string, error) {
	userID, ok := m.byID[sid]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return userID, nil
}

func (m *memSessionRepo) Set(ctx context.Context, sid, userID string, ttl time.Duration) error {
	if m.byID == nil {
		m.byID = map[string]string{}
	}
	m.byID[sid] = userID
	return nil
}

func (m *memSessionRepo) Delete(ctx context.Context, sid string) error {
	delete(m.byID, sid)
	return nil
}

type memSettingsRepo struct {
	values map[string]string
	setErr error
}

func (m *memSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *memSettingsRepo) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
