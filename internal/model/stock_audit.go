package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies which ledger operation produced an audit entry.
type AuditAction string

const (
	AuditAdded       AuditAction = "Added"
	AuditUpdated     AuditAction = "Updated"
	AuditDeleted     AuditAction = "Deleted"
	AuditOrderPlaced AuditAction = "Order Placed"
)

// StockAuditEntry records one quantity change on a stock entry. Entries are
// append-only: never updated, never deleted except by cascade from the entry.
type StockAuditEntry struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StockEntryID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Action       AuditAction `gorm:"type:varchar(20);not null"`
	// QuantityChanged is the signed delta: positive = stock in, negative = stock out.
	QuantityChanged int `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName overrides GORM's default pluralization.
func (StockAuditEntry) TableName() string { return "stock_audit_entries" }
