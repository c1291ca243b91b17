package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditRepository persists the append-only quantity change history.
type AuditRepository interface {
	// CreateTx must be called inside the same transaction as the ledger
	// mutation it records.
	CreateTx(tx *gorm.DB, a *model.StockAuditEntry) error
	ListByStockEntry(ctx context.Context, stockEntryID uuid.UUID) ([]model.StockAuditEntry, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) CreateTx(tx *gorm.DB, a *model.StockAuditEntry) error {
	return tx.Create(a).Error
}

func (r *auditRepo) ListByStockEntry(ctx context.Context, stockEntryID uuid.UUID) ([]model.StockAuditEntry, error) {
	var entries []model.StockAuditEntry
	err := r.db.WithContext(ctx).
		Where("stock_entry_id = ?", stockEntryID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
