package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks whether an invoice has been settled.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceFailed  InvoiceStatus = "Failed"
)

// Invoice bills a customer on behalf of a distributor.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DistributorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        InvoiceStatus   `gorm:"type:varchar(10);not null;default:'Pending'"`
	CreatedAt     time.Time
}

// Payment records a settled amount against an invoice.
type Payment struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionRef string          `gorm:"uniqueIndex;not null"`
	AmountPaid     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt         time.Time

	Invoice *Invoice `gorm:"foreignKey:InvoiceID"`
}
