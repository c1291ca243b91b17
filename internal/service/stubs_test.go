package service

import (
	"context"
	"sync"
	"time"

	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. Services open no real transaction when the
// repository's DB() is nil, so the *Tx methods receive a nil tx and operate
// directly on the maps.

// ── StockRepository stub ─────────────────────────────────────────────────────

type stubStockRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*model.StockEntry
	// branchOwner maps branch → distributor, for the ownership join.
	branchOwner map[uuid.UUID]uuid.UUID
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{
		entries:     make(map[uuid.UUID]*model.StockEntry),
		branchOwner: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *stubStockRepo) CreateTx(_ *gorm.DB, e *model.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.LastUpdated = time.Now()
	cloned := *e
	r.entries[e.ID] = &cloned
	return nil
}

func (r *stubStockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *e
	return &cloned, nil
}

func (r *stubStockRepo) FindForDistributor(_ context.Context, id, distributorID uuid.UUID) (*model.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || r.branchOwner[e.BranchID] != distributorID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *e
	return &cloned, nil
}

func (r *stubStockRepo) FindByBranchAndProduct(_ context.Context, branchID uuid.UUID, product string) (*model.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.BranchID == branchID && e.ProductName == product {
			cloned := *e
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStockRepo) FindByBranchAndProductForUpdateTx(_ *gorm.DB, branchID uuid.UUID, product string) (*model.StockEntry, error) {
	return r.FindByBranchAndProduct(context.Background(), branchID, product)
}

func (r *stubStockRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.StockEntry, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubStockRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StockEntry
	for _, e := range r.entries {
		if e.BranchID == branchID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// AdjustQuantityTx mirrors the guarded SQL update: the delta is rejected
// (0 rows) when it would take the quantity negative.
func (r *stubStockRepo) AdjustQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.Quantity+delta < 0 {
		return 0, nil
	}
	e.Quantity += delta
	e.LastUpdated = time.Now()
	return 1, nil
}

func (r *stubStockRepo) UpdatePriceTx(_ *gorm.DB, id uuid.UUID, price interface{}) error {
	return nil
}

func (r *stubStockRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *stubStockRepo) DB() *gorm.DB { return nil }

var _ repository.StockRepository = (*stubStockRepo)(nil)

// ── AuditRepository stub ─────────────────────────────────────────────────────

type stubAuditRepo struct {
	mu      sync.Mutex
	entries []model.StockAuditEntry
}

func newStubAuditRepo() *stubAuditRepo { return &stubAuditRepo{} }

func (r *stubAuditRepo) CreateTx(_ *gorm.DB, a *model.StockAuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.entries = append(r.entries, *a)
	return nil
}

func (r *stubAuditRepo) ListByStockEntry(_ context.Context, stockEntryID uuid.UUID) ([]model.StockAuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StockAuditEntry
	for _, a := range r.entries {
		if a.StockEntryID == stockEntryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAuditRepo) forEntry(stockEntryID uuid.UUID) []model.StockAuditEntry {
	out, _ := r.ListByStockEntry(context.Background(), stockEntryID)
	return out
}

var _ repository.AuditRepository = (*stubAuditRepo)(nil)

// ── BranchRepository stub ────────────────────────────────────────────────────

type stubBranchRepo struct {
	branches map[uuid.UUID]*model.Branch
}

func newStubBranchRepo() *stubBranchRepo {
	return &stubBranchRepo{branches: make(map[uuid.UUID]*model.Branch)}
}

func (r *stubBranchRepo) Create(_ context.Context, b *model.Branch) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	cloned := *b
	r.branches[b.ID] = &cloned
	return nil
}

func (r *stubBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBranchRepo) FindForDistributor(_ context.Context, id, distributorID uuid.UUID) (*model.Branch, error) {
	b, ok := r.branches[id]
	if !ok || b.DistributorID != distributorID {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBranchRepo) ListByDistributor(_ context.Context, distributorID uuid.UUID) ([]model.Branch, error) {
	var out []model.Branch
	for _, b := range r.branches {
		if b.DistributorID == distributorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ repository.BranchRepository = (*stubBranchRepo)(nil)

// ── DistributorRepository stub ───────────────────────────────────────────────

type stubDistributorRepo struct {
	distributors map[uuid.UUID]*model.Distributor
	byUser       map[uuid.UUID]*model.Distributor
	assignments  []model.DistributorCustomer
}

func newStubDistributorRepo() *stubDistributorRepo {
	return &stubDistributorRepo{
		distributors: make(map[uuid.UUID]*model.Distributor),
		byUser:       make(map[uuid.UUID]*model.Distributor),
	}
}

func (r *stubDistributorRepo) Create(_ context.Context, d *model.Distributor) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cloned := *d
	r.distributors[d.ID] = &cloned
	r.byUser[d.UserID] = r.distributors[d.ID]
	return nil
}

func (r *stubDistributorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Distributor, error) {
	d, ok := r.distributors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDistributorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Distributor, error) {
	d, ok := r.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDistributorRepo) AssignCustomer(_ context.Context, dc *model.DistributorCustomer) error {
	if dc.ID == uuid.Nil {
		dc.ID = uuid.New()
	}
	dc.CreatedAt = time.Now()
	r.assignments = append(r.assignments, *dc)
	return nil
}

func (r *stubDistributorRepo) CustomerAssigned(_ context.Context, customerID uuid.UUID) (bool, error) {
	for _, a := range r.assignments {
		if a.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubDistributorRepo) ListCustomers(_ context.Context, distributorID uuid.UUID) ([]model.DistributorCustomer, error) {
	var out []model.DistributorCustomer
	for _, a := range r.assignments {
		if a.DistributorID == distributorID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ repository.DistributorRepository = (*stubDistributorRepo)(nil)

// ── OrderRepository stub ─────────────────────────────────────────────────────

type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*model.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	cloned := *o
	r.orders[o.ID] = &cloned
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *o
	return &cloned, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) ListByDistributor(_ context.Context, distributorID uuid.UUID) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.DistributorID == distributorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByBranch(_ context.Context, branchID, distributorID uuid.UUID) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.BranchID == branchID && o.DistributorID == distributorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── NotificationRepository stub ──────────────────────────────────────────────

type stubNotificationRepo struct {
	notifications map[uuid.UUID]*model.LowStockNotification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[uuid.UUID]*model.LowStockNotification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *model.LowStockNotification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = time.Now()
	cloned := *n
	r.notifications[n.ID] = &cloned
	return nil
}

func (r *stubNotificationRepo) ListUnread(_ context.Context, distributorID uuid.UUID) ([]model.LowStockNotification, error) {
	var out []model.LowStockNotification
	for _, n := range r.notifications {
		if n.DistributorID == distributorID && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, distributorID uuid.UUID) (int64, error) {
	n, ok := r.notifications[id]
	if !ok || n.DistributorID != distributorID {
		return 0, nil
	}
	n.IsRead = true
	return 1, nil
}

var _ repository.NotificationRepository = (*stubNotificationRepo)(nil)

// ── Notifier stub ────────────────────────────────────────────────────────────

type alertRecord struct {
	EntryID   uuid.UUID
	Remaining int
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []alertRecord
}

func (n *recordingNotifier) LowStock(_ context.Context, entry *model.StockEntry, remaining int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, alertRecord{EntryID: entry.ID, Remaining: remaining})
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.alerts)
}

var _ Notifier = (*recordingNotifier)(nil)
