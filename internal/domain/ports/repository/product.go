package repository

import (
	"context"

	"membership-credits/internal/domain/model"
)

// ProductRepository exposes the product catalog. Catalogs are small; eligible
// product lookup is a full-table linear scan per request.
type ProductRepository interface {
	// ListAll returns every product in primary-key order. The ordering is part
	// of the contract: "first eligible product wins" must be deterministic.
	ListAll(ctx context.Context) ([]*model.Product, error)
	Save(ctx context.Context, p *model.Product) error
}
