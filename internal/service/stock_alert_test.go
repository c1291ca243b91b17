package service

import (
	"context"
	"testing"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShouldAlert(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"well above", 100, 10, false},
		{"one above", 11, 10, false},
		{"exactly at threshold", 10, 10, true},
		{"one below", 9, 10, true},
		{"zero", 0, 10, true},
		{"zero threshold only fires at zero", 1, 0, false},
		{"zero threshold at zero", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldAlert(tc.quantity, tc.threshold))
		})
	}
}

func TestMonitorSkipsRemovedEntries(t *testing.T) {
	notifier := &recordingNotifier{}
	monitor := NewStockAlertMonitor(10, notifier)

	entry := &model.StockEntry{ID: uuid.New(), ProductName: "Rice 50kg"}
	monitor.StockChanged(context.Background(), StockChange{
		Entry:             entry,
		Delta:             -5,
		ResultingQuantity: 0,
		Removed:           true,
	})

	assert.Zero(t, notifier.count())
}

func TestMonitorSkipsNilEntry(t *testing.T) {
	notifier := &recordingNotifier{}
	monitor := NewStockAlertMonitor(10, notifier)

	monitor.StockChanged(context.Background(), StockChange{ResultingQuantity: 0})

	assert.Zero(t, notifier.count())
}

func TestMonitorFiresAtOrBelowThreshold(t *testing.T) {
	notifier := &recordingNotifier{}
	monitor := NewStockAlertMonitor(10, notifier)
	entry := &model.StockEntry{ID: uuid.New(), ProductName: "Rice 50kg"}

	monitor.StockChanged(context.Background(), StockChange{Entry: entry, Delta: -1, ResultingQuantity: 11})
	assert.Zero(t, notifier.count())

	monitor.StockChanged(context.Background(), StockChange{Entry: entry, Delta: -1, ResultingQuantity: 10})
	assert.Equal(t, 1, notifier.count())

	// Every further mutation at or below the threshold re-fires.
	monitor.StockChanged(context.Background(), StockChange{Entry: entry, Delta: -1, ResultingQuantity: 9})
	assert.Equal(t, 2, notifier.count())
}
