package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a distributor's stocking location. Deleting a branch cascades to
// its stock entries.
type Branch struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DistributorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"not null"`
	Location      string     `gorm:"not null"`
	ManagerID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time

	Distributor *Distributor `gorm:"foreignKey:DistributorID"`
	Manager     *User        `gorm:"foreignKey:ManagerID"`
	Stock       []StockEntry `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}
