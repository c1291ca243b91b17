package service

import (
	"context"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService owns every quantity change to stock entries. Nothing else in
// the codebase writes StockEntry.Quantity.
//
// Invariants enforced here:
//   - quantity never goes negative on a committed operation
//   - every successful mutation writes exactly one audit entry, in the same
//     transaction as the quantity change
//   - the alert monitor sees every committed quantity change exactly once
type LedgerService interface {
	Add(ctx context.Context, distributorID, branchID uuid.UUID, req dto.AddStockRequest) (*model.StockEntry, error)
	Update(ctx context.Context, distributorID, stockID uuid.UUID, req dto.UpdateStockRequest) (*model.StockEntry, error)
	Adjust(ctx context.Context, distributorID, stockID uuid.UUID, delta int) (*model.StockEntry, error)
	Remove(ctx context.Context, distributorID, stockID uuid.UUID) error
	ListByBranch(ctx context.Context, distributorID, branchID uuid.UUID) ([]model.StockEntry, error)
	History(ctx context.Context, distributorID, stockID uuid.UUID) ([]model.StockAuditEntry, error)
}

type ledgerService struct {
	stock    repository.StockRepository
	audit    repository.AuditRepository
	branches repository.BranchRepository
	monitor  *StockAlertMonitor
}

func NewLedgerService(
	stock repository.StockRepository,
	audit repository.AuditRepository,
	branches repository.BranchRepository,
	monitor *StockAlertMonitor,
) LedgerService {
	return &ledgerService{stock: stock, audit: audit, branches: branches, monitor: monitor}
}

func (s *ledgerService) Add(ctx context.Context, distributorID, branchID uuid.UUID, req dto.AddStockRequest) (*model.StockEntry, error) {
	branch, err := s.branches.FindForDistributor(ctx, branchID, distributorID)
	if err != nil {
		return nil, ErrBranchNotFound
	}
	if _, err := s.stock.FindByBranchAndProduct(ctx, branch.ID, req.ProductName); err == nil {
		return nil, ErrDuplicateEntry
	}

	entry := model.StockEntry{
		BranchID:    branch.ID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}
	txErr := runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		if err := s.stock.CreateTx(tx, &entry); err != nil {
			return err
		}
		return s.audit.CreateTx(tx, &model.StockAuditEntry{
			StockEntryID:    entry.ID,
			Action:          model.AuditAdded,
			QuantityChanged: req.Quantity,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.monitor.StockChanged(ctx, StockChange{
		Entry:             &entry,
		Delta:             req.Quantity,
		ResultingQuantity: entry.Quantity,
	})
	return &entry, nil
}

// Update applies a partial patch. A quantity patch is recorded as an Updated
// audit entry with delta = new − old; a price-only patch still audits the
// mutation (delta 0) but does not wake the alert monitor.
func (s *ledgerService) Update(ctx context.Context, distributorID, stockID uuid.UUID, req dto.UpdateStockRequest) (*model.StockEntry, error) {
	entry, err := s.stock.FindForDistributor(ctx, stockID, distributorID)
	if err != nil {
		return nil, ErrStockNotFound
	}

	delta := 0
	txErr := runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		locked, err := s.stock.FindForUpdateTx(tx, entry.ID)
		if err != nil {
			return ErrStockNotFound
		}
		if req.Quantity != nil {
			delta = *req.Quantity - locked.Quantity
			rows, err := s.stock.AdjustQuantityTx(tx, locked.ID, delta)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrInsufficientStock
			}
			entry.Quantity = *req.Quantity
		}
		if req.Price != nil {
			if err := s.stock.UpdatePriceTx(tx, locked.ID, *req.Price); err != nil {
				return err
			}
			entry.Price = *req.Price
		}
		return s.audit.CreateTx(tx, &model.StockAuditEntry{
			StockEntryID:    entry.ID,
			Action:          model.AuditUpdated,
			QuantityChanged: delta,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	if req.Quantity != nil {
		s.monitor.StockChanged(ctx, StockChange{
			Entry:             entry,
			Delta:             delta,
			ResultingQuantity: entry.Quantity,
		})
	}
	return entry, nil
}

// Adjust applies a signed delta to a stock entry.
func (s *ledgerService) Adjust(ctx context.Context, distributorID, stockID uuid.UUID, delta int) (*model.StockEntry, error) {
	entry, err := s.stock.FindForDistributor(ctx, stockID, distributorID)
	if err != nil {
		return nil, ErrStockNotFound
	}

	txErr := runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		locked, err := s.stock.FindForUpdateTx(tx, entry.ID)
		if err != nil {
			return ErrStockNotFound
		}
		rows, err := s.stock.AdjustQuantityTx(tx, locked.ID, delta)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInsufficientStock
		}
		entry.Quantity = locked.Quantity + delta
		return s.audit.CreateTx(tx, &model.StockAuditEntry{
			StockEntryID:    entry.ID,
			Action:          model.AuditUpdated,
			QuantityChanged: delta,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.monitor.StockChanged(ctx, StockChange{
		Entry:             entry,
		Delta:             delta,
		ResultingQuantity: entry.Quantity,
	})
	return entry, nil
}

func (s *ledgerService) Remove(ctx context.Context, distributorID, stockID uuid.UUID) error {
	entry, err := s.stock.FindForDistributor(ctx, stockID, distributorID)
	if err != nil {
		return ErrStockNotFound
	}

	previous := 0
	txErr := runTx(ctx, s.stock.DB(), func(tx *gorm.DB) error {
		locked, err := s.stock.FindForUpdateTx(tx, entry.ID)
		if err != nil {
			return ErrStockNotFound
		}
		previous = locked.Quantity
		// Deleted audit row is written before the delete so both land in one
		// transaction.
		if err := s.audit.CreateTx(tx, &model.StockAuditEntry{
			StockEntryID:    locked.ID,
			Action:          model.AuditDeleted,
			QuantityChanged: -previous,
		}); err != nil {
			return err
		}
		return s.stock.DeleteTx(tx, locked.ID)
	})
	if txErr != nil {
		return txErr
	}

	s.monitor.StockChanged(ctx, StockChange{
		Entry:             entry,
		Delta:             -previous,
		ResultingQuantity: 0,
		Removed:           true,
	})
	return nil
}

func (s *ledgerService) ListByBranch(ctx context.Context, distributorID, branchID uuid.UUID) ([]model.StockEntry, error) {
	if _, err := s.branches.FindForDistributor(ctx, branchID, distributorID); err != nil {
		return nil, ErrBranchNotFound
	}
	return s.stock.ListByBranch(ctx, branchID)
}

func (s *ledgerService) History(ctx context.Context, distributorID, stockID uuid.UUID) ([]model.StockAuditEntry, error) {
	if _, err := s.stock.FindForDistributor(ctx, stockID, distributorID); err != nil {
		return nil, ErrStockNotFound
	}
	return s.audit.ListByStockEntry(ctx, stockID)
}
