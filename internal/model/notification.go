package model

import (
	"time"

	"github.com/google/uuid"
)

// LowStockNotification is the persisted half of a low-stock alert. Created by
// the stock alert monitor, never by the ledger itself.
type LowStockNotification struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DistributorID uuid.UUID `gorm:"type:uuid;not null;index"`
	StockEntryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message       string    `gorm:"not null"`
	IsRead        bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time

	Distributor *Distributor `gorm:"foreignKey:DistributorID"`
}
