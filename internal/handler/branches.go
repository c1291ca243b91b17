package handler

import (
	"net/http"

	"distrohub/internal/dto"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct{ svc service.BranchService }

func NewBranchHandler(svc service.BranchService) *BranchHandler {
	return &BranchHandler{svc: svc}
}

func (h *BranchHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BranchHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
