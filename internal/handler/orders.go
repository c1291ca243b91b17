package handler

import (
	"net/http"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders       service.OrderService
	distributors service.DistributorService
}

func NewOrderHandler(orders service.OrderService, distributors service.DistributorService) *OrderHandler {
	return &OrderHandler{orders: orders, distributors: distributors}
}

// Create places an order against a branch's stock. The customer pays the
// price recorded on the stock entry at order time.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	branchID, ok := pathUUID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), userID, branchID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "order_id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), userID, orderID, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderToResponse(order))
}

func (h *OrderHandler) ListForDistributor(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	orders, err := h.orders.ListForDistributor(c.Request.Context(), distributorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

func (h *OrderHandler) ListForBranch(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	branchID, ok := pathUUID(c, "branch_id")
	if !ok {
		return
	}
	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	orders, err := h.orders.ListForBranch(c.Request.Context(), distributorID, branchID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	orders, err := h.orders.ListForCustomer(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		BranchID:    o.BranchID.String(),
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Price:       o.Price,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

func ordersToResponse(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orderToResponse(&orders[i]))
	}
	return out
}
