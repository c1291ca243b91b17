package handler

import (
	"net/http"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/model"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	ledger       service.LedgerService
	distributors service.DistributorService
}

func NewStockHandler(ledger service.LedgerService, distributors service.DistributorService) *StockHandler {
	return &StockHandler{ledger: ledger, distributors: distributors}
}

func (h *StockHandler) Add(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	branchID, ok := pathUUID(c, "branch_id")
	if !ok {
		return
	}
	var req dto.AddStockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	entry, err := h.ledger.Add(c.Request.Context(), distributorID, branchID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stockToResponse(entry))
}

func (h *StockHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	stockID, ok := pathUUID(c, "stock_id")
	if !ok {
		return
	}
	var req dto.UpdateStockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	entry, err := h.ledger.Update(c.Request.Context(), distributorID, stockID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StockUpdatedResponse{
		Message: "Stock updated successfully",
		Data:    *stockToResponse(entry),
	})
}

func (h *StockHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	stockID, ok := pathUUID(c, "stock_id")
	if !ok {
		return
	}

	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if err := h.ledger.Remove(c.Request.Context(), distributorID, stockID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StockHandler) ListByBranch(c *gin.Context) {
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
	entries, err := h.ledger.ListByBranch(c.Request.Context(), distributorID, branchID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]dto.StockResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *stockToResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *StockHandler) History(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	stockID, ok := pathUUID(c, "stock_id")
	if !ok {
		return
	}

	distributorID, err := h.distributors.ResolveID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	audit, err := h.ledger.History(c.Request.Context(), distributorID, stockID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]dto.StockAuditResponse, 0, len(audit))
	for _, a := range audit {
		out = append(out, dto.StockAuditResponse{
			ID:              a.ID.String(),
			StockEntryID:    a.StockEntryID.String(),
			Action:          string(a.Action),
			QuantityChanged: a.QuantityChanged,
			Timestamp:       a.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

func stockToResponse(e *model.StockEntry) *dto.StockResponse {
	return &dto.StockResponse{
		ID:          e.ID.String(),
		BranchID:    e.BranchID.String(),
		ProductName: e.ProductName,
		Quantity:    e.Quantity,
		Price:       e.Price,
		LastUpdated: e.LastUpdated.Format(time.RFC3339),
	}
}
