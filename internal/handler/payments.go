package handler

import (
	"errors"
	"io"
	"net/http"

	"distrohub/internal/apierror"
	"distrohub/internal/dto"
	"distrohub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PaymentHandler struct{ svc service.PaymentService }

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Initialize(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var req dto.InitializePaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Initialize(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	reference := c.Param("reference")
	resp, err := h.svc.Verify(c.Request.Context(), userID, reference)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) GetByReference(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	reference := c.Param("reference")
	resp, err := h.svc.GetByReference(c.Request.Context(), userID, reference)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Webhook receives gateway events. Unauthenticated: trust comes from the
// HMAC signature over the raw body, so the body must be read before any
// JSON binding touches it.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Unable to read body"))
		return
	}
	signature := c.GetHeader("x-paystack-signature")

	if err := h.svc.HandleWebhook(c.Request.Context(), rawBody, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, apierror.New("Invalid signature"))
			return
		}
		log.Error().Err(err).Msg("webhook processing failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
		return
	}
	c.Status(http.StatusOK)
}
