package service

import "errors"

// Domain errors returned by services. Handlers map these onto HTTP statuses;
// the messages double as the client-facing error strings.
var (
	ErrBranchNotFound      = errors.New("Branch not found")
	ErrProductNotFound     = errors.New("Product not found in this branch")
	ErrStockNotFound       = errors.New("Stock not found or unauthorized")
	ErrInsufficientStock   = errors.New("Not enough stock available")
	ErrDuplicateEntry      = errors.New("Product already stocked in this branch")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrUserNotFound        = errors.New("User not found")
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrInvalidStatus       = errors.New("Invalid status")
	ErrUnauthorized        = errors.New("Not authorized to perform this action")
	ErrCustomerAssigned    = errors.New("Customer is already assigned to a distributor")
	ErrNotDistributor      = errors.New("No distributor profile for this account")
)
