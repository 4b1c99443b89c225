package model

import "time"

// Product is a catalog item purchasable to generate an invoice. The catalog
// owns these rows; this service treats them as read-only.
type Product struct {
	ID              string // UUID
	Title           string
	RebillTimes     int   // 0 = one-time purchase, no second price
	VariableQty     bool  // buyer may adjust the quantity
	FirstPriceCents int64 // first-tier price in cents, to avoid float errors
	CreditValue     int64 // credits granted per unit (the "credit" attribute)
	CreatedAt       time.Time
}

// EligibleForCreditPurchase reports whether this product is the one a user
// buys to receive $1 worth of credits:
//   - not recurring (no rebills, no second price)
//   - quantity adjustable by the buyer
//   - first price exactly $1.00
//   - grants exactly creditsPerDollar credits
func (p *Product) EligibleForCreditPurchase(creditsPerDollar int64) bool {
	if p.RebillTimes != 0 {
		return false
	}
	if !p.VariableQty {
		return false
	}
	if p.FirstPriceCents != 100 {
		return false
	}
	return p.CreditValue == creditsPerDollar
}
