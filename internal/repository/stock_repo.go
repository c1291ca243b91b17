package repository

import (
	"context"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository defines the data access contract for stock entries.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
//
// *Tx methods run inside a caller-owned transaction — callers must pass the
// live tx instance so the quantity change and its audit entry commit together.
type StockRepository interface {
	CreateTx(tx *gorm.DB, e *model.StockEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockEntry, error)
	// FindForDistributor resolves a stock entry only when its branch belongs
	// to the given distributor — ownership check and lookup in one query.
	FindForDistributor(ctx context.Context, id, distributorID uuid.UUID) (*model.StockEntry, error)
	FindByBranchAndProduct(ctx context.Context, branchID uuid.UUID, product string) (*model.StockEntry, error)
	// FindByBranchAndProductForUpdateTx takes a row lock (SELECT ... FOR UPDATE)
	// so concurrent orders against the same entry serialize.
	FindByBranchAndProductForUpdateTx(tx *gorm.DB, branchID uuid.UUID, product string) (*model.StockEntry, error)
	FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.StockEntry, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.StockEntry, error)
	// AdjustQuantityTx applies a signed delta guarded against going negative.
	// Returns the number of rows affected: 0 means the guard rejected the change.
	AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error)
	UpdatePriceTx(tx *gorm.DB, id uuid.UUID, price interface{}) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) CreateTx(tx *gorm.DB, e *model.StockEntry) error {
	return tx.Create(e).Error
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockEntry, error) {
	var e model.StockEntry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *stockRepo) FindForDistributor(ctx context.Context, id, distributorID uuid.UUID) (*model.StockEntry, error) {
	var e model.StockEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN branches ON branches.id = stock_entries.branch_id").
		Where("stock_entries.id = ? AND branches.distributor_id = ?", id, distributorID).
		First(&e).Error
	return &e, err
}

func (r *stockRepo) FindByBranchAndProduct(ctx context.Context, branchID uuid.UUID, product string) (*model.StockEntry, error) {
	var e model.StockEntry
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND product_name = ?", branchID, product).
		First(&e).Error
	return &e, err
}

func (r *stockRepo) FindByBranchAndProductForUpdateTx(tx *gorm.DB, branchID uuid.UUID, product string) (*model.StockEntry, error) {
	var e model.StockEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND product_name = ?", branchID, product).
		First(&e).Error
	return &e, err
}

func (r *stockRepo) FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.StockEntry, error) {
	var e model.StockEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *stockRepo) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.StockEntry, error) {
	var entries []model.StockEntry
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("product_name ASC").
		Find(&entries).Error
	return entries, err
}

func (r *stockRepo) AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	res := tx.Model(&model.StockEntry{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *stockRepo) UpdatePriceTx(tx *gorm.DB, id uuid.UUID, price interface{}) error {
	return tx.Model(&model.StockEntry{}).Where("id = ?", id).Update("price", price).Error
}

func (r *stockRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.StockEntry{}, "id = ?", id).Error
}

func (r *stockRepo) DB() *gorm.DB { return r.db }
