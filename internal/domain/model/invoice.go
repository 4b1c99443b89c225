package model

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"   // created, awaiting payment
	InvoiceStatusPaid      InvoiceStatus = "paid"      // settled by the payment layer
	InvoiceStatusCancelled InvoiceStatus = "cancelled" // admin/user cancel
)

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ProductID      string
	Description    string
	Qty            int64
	UnitPriceCents int64
	TotalCents     int64 // filled by Calculate
}

// Invoice is the billing document created from product + quantity + user.
// Once validated and persisted its SecureID keys the payable link.
type Invoice struct {
	ID         string // UUID
	UserID     string // UUID
	SecureID   string // opaque token used to build the /pay redirect URL
	Status     InvoiceStatus
	Items      []InvoiceItem
	TotalCents int64 // filled by Calculate
	CreatedAt  time.Time
}
