package service

import (
	"context"
	"testing"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoiceRepo struct {
	invoices []model.Invoice
	payments []model.Payment
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.invoices = append(r.invoices, *inv)
	return nil
}

func (r *stubInvoiceRepo) ListByDistributor(_ context.Context, distributorID uuid.UUID) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if inv.DistributorID == distributorID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) CreatePayment(_ context.Context, p *model.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *stubInvoiceRepo) ListPaymentsByDistributor(_ context.Context, distributorID uuid.UUID) ([]model.Payment, error) {
	owned := make(map[uuid.UUID]bool)
	for _, inv := range r.invoices {
		if inv.DistributorID == distributorID {
			owned[inv.ID] = true
		}
	}
	var out []model.Payment
	for _, p := range r.payments {
		if owned[p.InvoiceID] {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

type distributorFixture struct {
	svc          DistributorService
	distributors *stubDistributorRepo
	users        *stubUserRepo
	invoices     *stubInvoiceRepo

	distributorID uuid.UUID
	ownerUserID   uuid.UUID
}

func newDistributorFixture(t *testing.T) *distributorFixture {
	t.Helper()
	f := &distributorFixture{
		distributors: newStubDistributorRepo(),
		users:        newStubUserRepo(),
		invoices:     &stubInvoiceRepo{},
		ownerUserID:  uuid.New(),
	}
	dist := &model.Distributor{UserID: f.ownerUserID, Name: "Acme"}
	require.NoError(t, f.distributors.Create(context.Background(), dist))
	f.distributorID = dist.ID
	f.svc = NewDistributorService(f.distributors, f.users, f.invoices)
	return f
}

func (f *distributorFixture) seedCustomer(t *testing.T, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Username: email, Role: model.RoleBaseUser, Active: true}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func TestAssignCustomer(t *testing.T) {
	f := newDistributorFixture(t)
	customer := f.seedCustomer(t, "buyer@test.dev")

	resp, err := f.svc.AssignCustomer(context.Background(), f.ownerUserID, dto.AssignCustomerRequest{
		CustomerID: customer.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID.String(), resp.ID)

	customers, err := f.svc.ListCustomers(context.Background(), f.ownerUserID)
	require.NoError(t, err)
	require.Len(t, customers, 1)
}

func TestAssignCustomerOnlyOnce(t *testing.T) {
	f := newDistributorFixture(t)
	customer := f.seedCustomer(t, "buyer@test.dev")

	_, err := f.svc.AssignCustomer(context.Background(), f.ownerUserID, dto.AssignCustomerRequest{
		CustomerID: customer.ID.String(),
	})
	require.NoError(t, err)

	// Even a different distributor cannot claim an assigned customer.
	otherUser := uuid.New()
	require.NoError(t, f.distributors.Create(context.Background(), &model.Distributor{
		UserID: otherUser, Name: "Rival",
	}))
	_, err = f.svc.AssignCustomer(context.Background(), otherUser, dto.AssignCustomerRequest{
		CustomerID: customer.ID.String(),
	})
	assert.ErrorIs(t, err, ErrCustomerAssigned)
}

func TestAssignCustomerUnknownUser(t *testing.T) {
	f := newDistributorFixture(t)

	_, err := f.svc.AssignCustomer(context.Background(), f.ownerUserID, dto.AssignCustomerRequest{
		CustomerID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAssignCustomerRequiresDistributorProfile(t *testing.T) {
	f := newDistributorFixture(t)
	customer := f.seedCustomer(t, "buyer@test.dev")

	_, err := f.svc.AssignCustomer(context.Background(), uuid.New(), dto.AssignCustomerRequest{
		CustomerID: customer.ID.String(),
	})
	assert.ErrorIs(t, err, ErrNotDistributor)
}

func TestListInvoicesAndPaymentsScoped(t *testing.T) {
	f := newDistributorFixture(t)
	customer := f.seedCustomer(t, "buyer@test.dev")

	inv := &model.Invoice{
		DistributorID: f.distributorID,
		CustomerID:    customer.ID,
		TotalAmount:   decimal.NewFromInt(5000),
		Status:        model.InvoicePaid,
	}
	require.NoError(t, f.invoices.Create(context.Background(), inv))
	require.NoError(t, f.invoices.CreatePayment(context.Background(), &model.Payment{
		InvoiceID:      inv.ID,
		TransactionRef: "TRX-1",
		AmountPaid:     decimal.NewFromInt(5000),
	}))

	// Another distributor's invoice must not leak.
	require.NoError(t, f.invoices.Create(context.Background(), &model.Invoice{
		DistributorID: uuid.New(),
		CustomerID:    customer.ID,
		TotalAmount:   decimal.NewFromInt(999),
	}))

	invoices, err := f.svc.ListInvoices(context.Background(), f.ownerUserID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.True(t, invoices[0].TotalAmount.Equal(decimal.NewFromInt(5000)))

	payments, err := f.svc.ListPayments(context.Background(), f.ownerUserID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "TRX-1", payments[0].TransactionRef)
}
