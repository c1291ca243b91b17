package dto

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	BranchID    string          `json:"branch_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}
