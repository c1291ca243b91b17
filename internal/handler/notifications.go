package handler

import (
	"net/http"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications service.NotificationService
	distributors  service.DistributorService
}

func NewNotificationHandler(notifications service.NotificationService, distributors service.DistributorService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, distributors: distributors}
}

func (h *NotificationHandler) ListUnread(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	notifications, err := h.notifications.ListUnread(c.Request.Context(), distributorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:           n.ID.String(),
			StockEntryID: n.StockEntryID.String(),
			Message:      n.Message,
			IsRead:       n.IsRead,
			CreatedAt:    n.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	notificationID, ok := pathUUID(c, "notification_id")
	if !ok {
		return
	}
	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), notificationID, distributorID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
