package dto

import "github.com/shopspring/decimal"

type InitializePaymentRequest struct {
	Email  string          `json:"email" validate:"required,email"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

type InitializePaymentResponse struct {
	Message          string              `json:"message"`
	AuthorizationURL string              `json:"authorization_url"`
	Transaction      TransactionResponse `json:"transaction"`
}

type TransactionResponse struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	PaidAt    *string         `json:"paid_at,omitempty"`
	CreatedAt string          `json:"created_at"`
}
