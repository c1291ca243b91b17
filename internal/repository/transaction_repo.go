package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByReference(ctx context.Context, reference string) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByReference(ctx context.Context, reference string) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&t).Error
	return &t, err
}

func (r *transactionRepo) Update(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}
