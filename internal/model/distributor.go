package model

import (
	"time"

	"github.com/google/uuid"
)

// Distributor is the business account behind a set of branches.
// Linked 1:1 to the User that authenticates as it.
type Distributor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// DistributorCustomer assigns a customer account to a distributor.
// A customer belongs to at most one distributor.
type DistributorCustomer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DistributorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_distributor_customer"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_distributor_customer"`
	CreatedAt     time.Time

	Distributor *Distributor `gorm:"foreignKey:DistributorID"`
	Customer    *User        `gorm:"foreignKey:CustomerID"`
}
