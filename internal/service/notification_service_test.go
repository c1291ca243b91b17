package service

import (
	"context"
	"testing"

	"distrohub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	Channel string
	Payload interface{}
}

type stubPublisher struct {
	published []publishedMessage
}

func (p *stubPublisher) Publish(_ context.Context, channel string, payload interface{}) error {
	p.published = append(p.published, publishedMessage{Channel: channel, Payload: payload})
	return nil
}

func TestLowStockPersistsRowAndPublishes(t *testing.T) {
	notifications := newStubNotificationRepo()
	branches := newStubBranchRepo()
	publisher := &stubPublisher{}

	user := &model.User{ID: uuid.New(), Email: "owner@acme.test"}
	dist := &model.Distributor{ID: uuid.New(), UserID: user.ID, Name: "Acme", User: user}
	branch := &model.Branch{DistributorID: dist.ID, Name: "Main", Location: "Lagos", Distributor: dist}
	require.NoError(t, branches.Create(context.Background(), branch))

	svc := NewNotificationService(notifications, branches, publisher, nil)

	entry := &model.StockEntry{ID: uuid.New(), BranchID: branch.ID, ProductName: "Rice 50kg"}
	svc.LowStock(context.Background(), entry, 7)

	unread, err := svc.ListUnread(context.Background(), dist.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, entry.ID, unread[0].StockEntryID)
	assert.Contains(t, unread[0].Message, "Rice 50kg")
	assert.Contains(t, unread[0].Message, "7")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, StockUpdatesChannel, publisher.published[0].Channel)
}

func TestLowStockUnresolvableBranchIsDropped(t *testing.T) {
	notifications := newStubNotificationRepo()
	branches := newStubBranchRepo()
	publisher := &stubPublisher{}

	svc := NewNotificationService(notifications, branches, publisher, nil)

	entry := &model.StockEntry{ID: uuid.New(), BranchID: uuid.New(), ProductName: "Rice 50kg"}
	svc.LowStock(context.Background(), entry, 3)

	assert.Empty(t, publisher.published)
	assert.Empty(t, notifications.notifications)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	notifications := newStubNotificationRepo()
	svc := NewNotificationService(notifications, newStubBranchRepo(), nil, nil)

	distributorID := uuid.New()
	n := &model.LowStockNotification{DistributorID: distributorID, StockEntryID: uuid.New(), Message: "low"}
	require.NoError(t, notifications.Create(context.Background(), n))

	err := svc.MarkRead(context.Background(), n.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.MarkRead(context.Background(), n.ID, distributorID))

	unread, err := svc.ListUnread(context.Background(), distributorID)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
