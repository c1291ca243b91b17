package service

import (
	"context"

	"distrohub/internal/model"
)

// StockChange carries the outcome of a committed ledger mutation.
type StockChange struct {
	Entry             *model.StockEntry
	Delta             int
	ResultingQuantity int
	// Removed marks a change produced by entry deletion. No alert is raised
	// for removed entries — there is nothing left to restock.
	Removed bool
}

// Notifier is the dispatch collaborator the monitor hands alerts to.
// The transactional core never depends on how the fan-out is delivered.
type Notifier interface {
	LowStock(ctx context.Context, entry *model.StockEntry, remaining int)
}

// ShouldAlert is the low-stock policy: fire whenever a mutation lands at or
// below the threshold. Alerts re-fire on every qualifying mutation, not just
// on the first crossing.
func ShouldAlert(resultingQuantity, threshold int) bool {
	return resultingQuantity <= threshold
}

// StockAlertMonitor evaluates ledger change events against the configured
// threshold. Called synchronously after every committed quantity mutation.
type StockAlertMonitor struct {
	threshold int
	notifier  Notifier
}

func NewStockAlertMonitor(threshold int, notifier Notifier) *StockAlertMonitor {
	return &StockAlertMonitor{threshold: threshold, notifier: notifier}
}

// StockChanged applies the policy to one change event.
func (m *StockAlertMonitor) StockChanged(ctx context.Context, change StockChange) {
	if change.Removed || change.Entry == nil {
		return
	}
	if !ShouldAlert(change.ResultingQuantity, m.threshold) {
		return
	}
	m.notifier.LowStock(ctx, change.Entry, change.ResultingQuantity)
}
