package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Invoice, error)
	CreatePayment(ctx context.Context, p *model.Payment) error
	// ListPaymentsByDistributor returns payments against any of the
	// distributor's invoices.
	ListPaymentsByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Payment, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("distributor_id = ?", distributorID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) CreatePayment(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *invoiceRepo) ListPaymentsByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Where("invoices.distributor_id = ?", distributorID).
		Order("payments.paid_at DESC").
		Find(&payments).Error
	return payments, err
}
