// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"

	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
)

// memLedgerRepo is a small in-memory ledger used by unit tests.
type memLedgerRepo struct {
	mu         sync.RWMutex
	balances   map[string]int64
	entries    map[string][]*model.LedgerEntry // already newest-first
	balanceErr error
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{
		balances: make(map[string]int64),
		entries:  make(map[string][]*model.LedgerEntry),
	}
}

func (m *memLedgerRepo) Balance(ctx context.Context, userID string) (int64, error) {
	if m.balanceErr != nil {
		return 0, m.balanceErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[userID], nil
}

func (m *memLedgerRepo) ListByUser(ctx context.Context, userID string) ([]*model.LedgerEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.LedgerEntry, len(m.entries[userID]))
	copy(out, m.entries[userID])
	return out, nil
}

func (m *memLedgerRepo) Add(ctx context.Context, tx repository.Tx, e *model.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.entries[e.UserID] = append([]*model.LedgerEntry{&cp}, m.entries[e.UserID]...)
	m.balances[e.UserID] += e.Value
	return nil
}

// memProductRepo preserves insertion order, standing in for primary-key order.
type memProductRepo struct {
	mu       sync.RWMutex
	products []*model.Product
	listErr  error
}

func newMemProductRepo(products ...*model.Product) *memProductRepo {
	return &memProductRepo{products: products}
}

func (m *memProductRepo) ListAll(ctx context.Context) ([]*model.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProductRepo) Save(ctx context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products = append(m.products, &cp)
	return nil
}

// fakeInvoicing records the collaborator call sequence instead of persisting.
type fakeInvoicing struct {
	validateMsgs []string // returned by Validate when non-empty
	insertErr    error

	newCalls   int
	calculated []*model.Invoice
	inserted   []*model.Invoice
}

func (f *fakeInvoicing) New(user *model.User, product *model.Product, qty int64) *model.Invoice {
	f.newCalls++
	inv := &model.Invoice{
		ID:       "inv-1",
		SecureID: "SECURE123",
		Status:   model.InvoiceStatusPending,
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

func (f *fakeInvoicing) Validate(ctx context.Context, inv *model.Invoice) []string {
	return f.validateMsgs
}

func (f *fakeInvoicing) Calculate(inv *model.Invoice) {
	var total int64
	for i := range inv.Items {
		inv.Items[i].TotalCents = inv.Items[i].Qty * inv.Items[i].UnitPriceCents
		total += inv.Items[i].TotalCents
	}
	inv.TotalCents = total
	f.calculated = append(f.calculated, inv)
}

func (f *fakeInvoicing) Insert(ctx context.Context, inv *model.Invoice) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, inv)
	return nil
}
