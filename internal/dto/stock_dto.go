package dto

import "github.com/shopspring/decimal"

type AddStockRequest struct {
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
}

// UpdateStockRequest is a partial update: nil fields are left untouched.
type UpdateStockRequest struct {
	Quantity *int             `json:"quantity" validate:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
}

type StockResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated string          `json:"last_updated"`
}

type StockUpdatedResponse struct {
	Message string        `json:"message"`
	Data    StockResponse `json:"data"`
}

type StockAuditResponse struct {
	ID              string `json:"id"`
	StockEntryID    string `json:"stock_entry_id"`
	Action          string `json:"action"`
	QuantityChanged int    `json:"quantity_changed"`
	Timestamp       string `json:"timestamp"`
}
