// File: cmd/seed/main.go
//
// Dev/test seeding: creates the schema if missing and loads one member, a
// small product catalog (one eligible credit product among decoys), a ledger
// trail, and the credits_per_dollar setting.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"membership-credits/internal/config"
	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
	pg "membership-credits/internal/infra/db/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    registered_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS credit_ledger (
    id          BIGSERIAL PRIMARY KEY,
    user_id     UUID NOT NULL REFERENCES users(id),
    value       BIGINT NOT NULL,
    comment     TEXT NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id                UUID PRIMARY KEY,
    title             TEXT NOT NULL,
    rebill_times      INT NOT NULL DEFAULT 0,
    variable_qty      BOOLEAN NOT NULL DEFAULT false,
    first_price_cents BIGINT NOT NULL,
    credit_value      BIGINT NOT NULL DEFAULT 0,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS invoices (
    id          UUID PRIMARY KEY,
    user_id     UUID NOT NULL REFERENCES users(id),
    secure_id   TEXT NOT NULL UNIQUE,
    status      TEXT NOT NULL,
    total_cents BIGINT NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS invoice_items (
    id               BIGSERIAL PRIMARY KEY,
    invoice_id       UUID NOT NULL REFERENCES invoices(id),
    product_id       UUID NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    qty              BIGINT NOT NULL,
    unit_price_cents BIGINT NOT NULL,
    total_cents      BIGINT NOT NULL
);
`

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, true)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	productRepo := pg.NewProductRepo(pool)
	products, err := productRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	if len(products) > 0 {
		fmt.Printf("%d products already present. No changes.\n", len(products))
		return
	}

	settingsRepo := pg.NewSettingsRepo(pool)
	if err := settingsRepo.Set(ctx, repository.SettingKeyCreditsPerDollar, "100"); err != nil {
		log.Fatalf("set ratio: %v", err)
	}

	userRepo := pg.NewUserRepo(pool)
	member := &model.User{
		ID:           uuid.NewString(),
		Email:        "member@example.test",
		Name:         "Test Member",
		RegisteredAt: time.Now(),
	}
	if err := userRepo.Save(ctx, member); err != nil {
		log.Fatalf("save user: %v", err)
	}

	// One eligible credit product plus decoys failing one predicate each.
	now := time.Now()
	seed := []*model.Product{
		{ID: uuid.NewString(), Title: "Gold Membership", RebillTimes: 12, VariableQty: true, FirstPriceCents: 100, CreditValue: 100, CreatedAt: now},
		{ID: uuid.NewString(), Title: "Fixed Credit Pack", RebillTimes: 0, VariableQty: false, FirstPriceCents: 100, CreditValue: 100, CreatedAt: now},
		{ID: uuid.NewString(), Title: "Workshop Pass", RebillTimes: 0, VariableQty: true, FirstPriceCents: 500, CreditValue: 100, CreatedAt: now},
		{ID: uuid.NewString(), Title: "$1 Credit", RebillTimes: 0, VariableQty: true, FirstPriceCents: 100, CreditValue: 100, CreatedAt: now},
	}
	for _, p := range seed {
		if err := productRepo.Save(ctx, p); err != nil {
			log.Fatalf("save product %s: %v", p.Title, err)
		}
	}

	ledgerRepo := pg.NewLedgerRepo(pool)
	entries := []*model.LedgerEntry{
		{UserID: member.ID, Value: 500, Comment: "Initial credit purchase", OccurredAt: now.Add(-48 * time.Hour)},
		{UserID: member.ID, Value: -120, Comment: "Laser cutter time", OccurredAt: now.Add(-24 * time.Hour)},
		{UserID: member.ID, Value: 200, Comment: "Credit top-up", OccurredAt: now.Add(-2 * time.Hour)},
	}
	for _, e := range entries {
		if err := ledgerRepo.Add(ctx, nil, e); err != nil {
			log.Fatalf("add ledger entry: %v", err)
		}
	}

	fmt.Printf("Seeded member %s with %d products and %d ledger entries.\n", member.Email, len(seed), len(entries))
	fmt.Printf("Login for dev: curl -X POST -d user_id=%s http://localhost:%d/dev/login\n", member.ID, cfg.Server.Port)
}
