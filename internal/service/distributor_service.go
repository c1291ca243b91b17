package service

import (
	"context"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
)

type DistributorService interface {
	// ResolveID maps an authenticated user to their distributor profile ID.
	ResolveID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	AssignCustomer(ctx context.Context, userID uuid.UUID, req dto.AssignCustomerRequest) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, userID uuid.UUID) ([]dto.CustomerResponse, error)
	ListInvoices(ctx context.Context, userID uuid.UUID) ([]dto.InvoiceResponse, error)
	ListPayments(ctx context.Context, userID uuid.UUID) ([]dto.PaymentResponse, error)
}

type distributorService struct {
	distributors repository.DistributorRepository
	users        repository.UserRepository
	invoices     repository.InvoiceRepository
}

func NewDistributorService(distributors repository.DistributorRepository, users repository.UserRepository, invoices repository.InvoiceRepository) DistributorService {
	return &distributorService{distributors: distributors, users: users, invoices: invoices}
}

func (s *distributorService) ResolveID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, ErrNotDistributor
	}
	return dist.ID, nil
}

func (s *distributorService) AssignCustomer(ctx context.Context, userID uuid.UUID, req dto.AssignCustomerRequest) (*dto.CustomerResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, err
	}
	customer, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// A customer can belong to at most one distributor.
	assigned, err := s.distributors.CustomerAssigned(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, ErrCustomerAssigned
	}

	dc := &model.DistributorCustomer{
		DistributorID: dist.ID,
		CustomerID:    customerID,
	}
	if err := s.distributors.AssignCustomer(ctx, dc); err != nil {
		return nil, ErrCustomerAssigned
	}

	return &dto.CustomerResponse{
		ID:         customer.ID.String(),
		Username:   customer.Username,
		Email:      customer.Email,
		AssignedAt: dc.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *distributorService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]dto.CustomerResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	assignments, err := s.distributors.ListCustomers(ctx, dist.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerResponse, 0, len(assignments))
	for _, a := range assignments {
		resp := dto.CustomerResponse{
			ID:         a.CustomerID.String(),
			AssignedAt: a.CreatedAt.Format(time.RFC3339),
		}
		if a.Customer != nil {
			resp.Username = a.Customer.Username
			resp.Email = a.Customer.Email
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *distributorService) ListInvoices(ctx context.Context, userID uuid.UUID) ([]dto.InvoiceResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	invoices, err := s.invoices.ListByDistributor(ctx, dist.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceResponse{
			ID:          inv.ID.String(),
			CustomerID:  inv.CustomerID.String(),
			TotalAmount: inv.TotalAmount,
			Status:      string(inv.Status),
			CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *distributorService) ListPayments(ctx context.Context, userID uuid.UUID) ([]dto.PaymentResponse, error) {
	dist, err := s.distributors.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotDistributor
	}

	payments, err := s.invoices.ListPaymentsByDistributor(ctx, dist.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{
			ID:             p.ID.String(),
			InvoiceID:      p.InvoiceID.String(),
			TransactionRef: p.TransactionRef,
			AmountPaid:     p.AmountPaid,
			PaidAt:         p.PaidAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
