package handler

import (
	"net/http"

	"distrohub/internal/dto"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
)

type DistributorHandler struct{ svc service.DistributorService }

func NewDistributorHandler(svc service.DistributorService) *DistributorHandler {
	return &DistributorHandler{svc: svc}
}

func (h *DistributorHandler) AssignCustomer(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var req dto.AssignCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AssignCustomer(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DistributorHandler) ListCustomers(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListCustomers(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributorHandler) ListInvoices(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListInvoices(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributorHandler) ListPayments(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListPayments(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
