package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistributorRepository interface {
	Create(ctx context.Context, d *model.Distributor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Distributor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Distributor, error)
	AssignCustomer(ctx context.Context, dc *model.DistributorCustomer) error
	CustomerAssigned(ctx context.Context, customerID uuid.UUID) (bool, error)
	ListCustomers(ctx context.Context, distributorID uuid.UUID) ([]model.DistributorCustomer, error)
}

type distributorRepo struct{ db *gorm.DB }

func NewDistributorRepository(db *gorm.DB) DistributorRepository { return &distributorRepo{db: db} }

func (r *distributorRepo) Create(ctx context.Context, d *model.Distributor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *distributorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Distributor, error) {
	var d model.Distributor
	err := r.db.WithContext(ctx).Preload("User").First(&d, "id = ?", id).Error
	return &d, err
}

func (r *distributorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Distributor, error) {
	var d model.Distributor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&d).Error
	return &d, err
}

func (r *distributorRepo) AssignCustomer(ctx context.Context, dc *model.DistributorCustomer) error {
	return r.db.WithContext(ctx).Create(dc).Error
}

func (r *distributorRepo) CustomerAssigned(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DistributorCustomer{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count > 0, err
}

func (r *distributorRepo) ListCustomers(ctx context.Context, distributorID uuid.UUID) ([]model.DistributorCustomer, error) {
	var customers []model.DistributorCustomer
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("distributor_id = ?", distributorID).
		Order("created_at ASC").
		Find(&customers).Error
	return customers, err
}
