package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order fulfillment state machine:
// Pending → Processing → Shipped → Delivered, forward-only.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
)

var statusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderProcessing: 1,
	OrderShipped:    2,
	OrderDelivered:  3,
}

// Valid reports whether s is a member of the status enum.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from → to.
// Only strictly forward transitions along the chain are allowed.
func CanTransition(from, to OrderStatus) bool {
	f, ok1 := statusRank[from]
	t, ok2 := statusRank[to]
	return ok1 && ok2 && t > f
}

// Order records a customer's request fulfilled from a branch's stock.
// Created only after a successful stock decrement in the same transaction.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DistributorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName   string          `gorm:"not null"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer    *User        `gorm:"foreignKey:CustomerID"`
	Distributor *Distributor `gorm:"foreignKey:DistributorID"`
	Branch      *Branch      `gorm:"foreignKey:BranchID"`
}
