package service

import (
	"context"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService orchestrates order creation against branch stock and the
// forward-only status machine.
type OrderService interface {
	// Create runs resolve → validate → decrement → insert as one transaction.
	// Concurrent orders against the same stock entry serialize on the row
	// lock, so two requests for the last unit cannot both succeed.
	Create(ctx context.Context, customerID, branchID uuid.UUID, req dto.CreateOrderRequest) (*model.Order, error)
	// UpdateStatus advances the state machine. Only the owning distributor
	// may advance, and only forward.
	UpdateStatus(ctx context.Context, actorUserID, orderID uuid.UUID, status string) (*model.Order, error)
	ListForDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Order, error)
	ListForBranch(ctx context.Context, distributorID, branchID uuid.UUID) ([]model.Order, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
}

type orderService struct {
	orders       repository.OrderRepository
	stock        repository.StockRepository
	audit        repository.AuditRepository
	branches     repository.BranchRepository
	distributors repository.DistributorRepository
	monitor      *StockAlertMonitor
}

func NewOrderService(
	orders repository.OrderRepository,
	stock repository.StockRepository,
	audit repository.AuditRepository,
	branches repository.BranchRepository,
	distributors repository.DistributorRepository,
	monitor *StockAlertMonitor,
) OrderService {
	return &orderService{
		orders:       orders,
		stock:        stock,
		audit:        audit,
		branches:     branches,
		distributors: distributors,
		monitor:      monitor,
	}
}

func (s *orderService) Create(ctx context.Context, customerID, branchID uuid.UUID, req dto.CreateOrderRequest) (*model.Order, error) {
	branch, err := s.branches.FindByID(ctx, branchID)
	if err != nil {
		return nil, ErrBranchNotFound
	}

	var order model.Order
	var change StockChange
	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		// Row lock: holds until commit, serializing overlapping orders.
		entry, err := s.stock.FindByBranchAndProductForUpdateTx(tx, branch.ID, req.ProductName)
		if err != nil {
			return ErrProductNotFound
		}
		if req.Quantity > entry.Quantity {
			return ErrInsufficientStock
		}

		// Guarded decrement: 0 rows means another writer got there first.
		rows, err := s.stock.AdjustQuantityTx(tx, entry.ID, -req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInsufficientStock
		}

		if err := s.audit.CreateTx(tx, &model.StockAuditEntry{
			StockEntryID:    entry.ID,
			Action:          model.AuditOrderPlaced,
			QuantityChanged: -req.Quantity,
		}); err != nil {
			return err
		}

		order = model.Order{
			CustomerID:    customerID,
			DistributorID: branch.DistributorID,
			BranchID:      branch.ID,
			ProductName:   req.ProductName,
			Quantity:      req.Quantity,
			Price:         entry.Price,
			Status:        model.OrderPending,
		}
		if err := s.orders.CreateTx(tx, &order); err != nil {
			return err
		}

		entry.Quantity -= req.Quantity
		change = StockChange{
			Entry:             entry,
			Delta:             -req.Quantity,
			ResultingQuantity: entry.Quantity,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Alert evaluation happens after commit: the fan-out must never roll
	// back a placed order.
	s.monitor.StockChanged(ctx, change)
	return &order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, actorUserID, orderID uuid.UUID, status string) (*model.Order, error) {
	next := model.OrderStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	distributor, err := s.distributors.FindByUserID(ctx, actorUserID)
	if err != nil || distributor.ID != order.DistributorID {
		return nil, ErrUnauthorized
	}

	if !model.CanTransition(order.Status, next) {
		return nil, ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

func (s *orderService) ListForDistributor(ctx context.Context, distributorID uuid.UUID) ([]model.Order, error) {
	return s.orders.ListByDistributor(ctx, distributorID)
}

func (s *orderService) ListForBranch(ctx context.Context, distributorID, branchID uuid.UUID) ([]model.Order, error) {
	if _, err := s.branches.FindForDistributor(ctx, branchID, distributorID); err != nil {
		return nil, ErrBranchNotFound
	}
	return s.orders.ListByBranch(ctx, branchID, distributorID)
}

func (s *orderService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}
