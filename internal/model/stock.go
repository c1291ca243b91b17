package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntry is the authoritative quantity record for a (branch, product) pair.
// Quantity is mutated exclusively through the stock ledger — every committed
// mutation leaves Quantity >= 0 and appends exactly one StockAuditEntry.
type StockEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_branch_product"`
	ProductName string          `gorm:"not null;uniqueIndex:idx_branch_product"`
	Quantity    int             `gorm:"not null;default:0;check:quantity >= 0"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LastUpdated time.Time       `gorm:"autoUpdateTime"`
	CreatedAt   time.Time

	Branch *Branch           `gorm:"foreignKey:BranchID"`
	Audit  []StockAuditEntry `gorm:"foreignKey:StockEntryID;constraint:OnDelete:CASCADE"`
}
