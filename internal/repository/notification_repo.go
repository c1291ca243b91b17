package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.LowStockNotification) error
	ListUnread(ctx context.Context, distributorID uuid.UUID) ([]model.LowStockNotification, error)
	// MarkRead flips the read flag; scoped to the owning distributor so one
	// account cannot acknowledge another's alerts.
	MarkRead(ctx context.Context, id, distributorID uuid.UUID) (int64, error)
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.LowStockNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListUnread(ctx context.Context, distributorID uuid.UUID) ([]model.LowStockNotification, error) {
	var notifications []model.LowStockNotification
	err := r.db.WithContext(ctx).
		Where("distributor_id = ? AND is_read = false", distributorID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, distributorID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.LowStockNotification{}).
		Where("id = ? AND distributor_id = ?", id, distributorID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
