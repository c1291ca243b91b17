package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) error
	// FindByID preloads the owning distributor and its user account —
	// notification dispatch needs the distributor's registered email.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	FindForDistributor(ctx context.Context, id, distributorID uuid.UUID) (*model.Branch, error)
	ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Branch, error)
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).
		Preload("Distributor").
		Preload("Distributor.User").
		First(&b, "id = ?", id).Error
	return &b, err
}

func (r *branchRepo) FindForDistributor(ctx context.Context, id, distributorID uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).
		Where("id = ? AND distributor_id = ?", id, distributorID).
		First(&b).Error
	return &b, err
}

func (r *branchRepo) ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).
		Where("distributor_id = ?", distributorID).
		Order("created_at ASC").
		Find(&branches).Error
	return branches, err
}
