package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the payment gateway's transaction lifecycle.
type TransactionStatus string

const (
	TxPending TransactionStatus = "pending"
	TxSuccess TransactionStatus = "success"
	TxFailed  TransactionStatus = "failed"
)

// Transaction tracks a payment gateway charge initiated by a user.
// Reference is assigned by the gateway on initialization when available;
// NewTransactionRef provides a fallback.
type Transaction struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Reference string            `gorm:"uniqueIndex;not null"`
	Amount    decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	PaidAt    *time.Time        `gorm:""`
	Status    TransactionStatus `gorm:"type:varchar(10);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// NewTransactionRef generates a locally-unique transaction reference.
func NewTransactionRef() string {
	return "TRX-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
