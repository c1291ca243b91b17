package service

import (
	"context"
	"fmt"

	"distrohub/internal/infra"
	"distrohub/internal/model"
	"distrohub/internal/repository"
	"distrohub/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StockUpdatesChannel is the shared push channel connected listeners
// subscribe to.
const StockUpdatesChannel = "stock_updates"

// NotificationService is the dispatch side of a low-stock alert plus the
// read API over persisted notifications. Fan-out legs are independent and
// best-effort: a failed publish or email never fails the triggering request.
type NotificationService interface {
	Notifier

	ListUnread(ctx context.Context, distributorID uuid.UUID) ([]model.LowStockNotification, error)
	MarkRead(ctx context.Context, id, distributorID uuid.UUID) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	branches      repository.BranchRepository
	publisher     infra.Publisher
	dispatcher    *worker.Dispatcher
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	branches repository.BranchRepository,
	publisher infra.Publisher,
	dispatcher *worker.Dispatcher,
) NotificationService {
	return &notificationService{
		notifications: notifications,
		branches:      branches,
		publisher:     publisher,
		dispatcher:    dispatcher,
	}
}

// LowStock fans a low-stock event out to (a) a persisted notification row,
// (b) the stock_updates push channel, (c) an email to the distributor.
func (s *notificationService) LowStock(ctx context.Context, entry *model.StockEntry, remaining int) {
	branch, err := s.branches.FindByID(ctx, entry.BranchID)
	if err != nil || branch.Distributor == nil {
		log.Error().Err(err).
			Str("stock_entry_id", entry.ID.String()).
			Msg("low stock alert: cannot resolve branch distributor")
		return
	}

	message := fmt.Sprintf("Low stock alert! %s has only %d items left.", entry.ProductName, remaining)

	if err := s.notifications.Create(ctx, &model.LowStockNotification{
		DistributorID: branch.DistributorID,
		StockEntryID:  entry.ID,
		Message:       message,
	}); err != nil {
		log.Error().Err(err).
			Str("stock_entry_id", entry.ID.String()).
			Msg("low stock alert: failed to persist notification")
		// Fall through: the push and email legs are independent.
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, StockUpdatesChannel, map[string]string{"message": message}); err != nil {
			log.Error().Err(err).Msg("low stock alert: publish failed")
		}
	}

	if s.dispatcher != nil && branch.Distributor.User != nil {
		body := fmt.Sprintf(
			"Dear %s,\n\nYour stock for %s is running low (%d left). "+
				"Please restock to avoid running out.\n\nBest regards,\nThe Distrohub Team",
			branch.Distributor.Name, entry.ProductName, remaining,
		)
		payload := worker.EmailJobPayload{
			ToEmail: branch.Distributor.User.Email,
			Subject: "Low Stock Alert",
			Body:    body,
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Msg("low stock alert: failed to enqueue email")
		}
	}
}

func (s *notificationService) ListUnread(ctx context.Context, distributorID uuid.UUID) ([]model.LowStockNotification, error) {
	return s.notifications.ListUnread(ctx, distributorID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, distributorID uuid.UUID) error {
	rows, err := s.notifications.MarkRead(ctx, id, distributorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUnauthorized
	}
	return nil
}
