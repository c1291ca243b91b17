package dto

import "github.com/shopspring/decimal"

type AssignCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

type CustomerResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	AssignedAt string `json:"assigned_at"`
}

type InvoiceResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

type PaymentResponse struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoice_id"`
	TransactionRef string          `json:"transaction_ref"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	PaidAt         string          `json:"paid_at"`
}
