package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/server/http/dto"
	"github.com/inkandimagination/artstore/internal/usecase"
)

// PaymentHandler manages the gateway checkout endpoints.
type PaymentHandler struct {
	facade FulfillmentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade FulfillmentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateOrder handles POST /api/payment/create-order. The order is persisted
// pending before the gateway call, so a gateway failure still leaves a
// recoverable order behind.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, handle, err := h.facade.CreatePaymentOrder(c.Request.Context(), req.OrderData.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.CreatePaymentOrderResponse{
		RazorpayOrder: dto.ChargeHandleResponse{
			ID:       handle.ID,
			Amount:   handle.Amount,
			Currency: handle.Currency,
			Status:   handle.Status,
		},
		OrderID: order.ID,
		Key:     h.facade.GatewayKeyID(),
	}))
}

// VerifyPayment handles POST /api/payment/verify-payment.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.OrderID == "" || req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		badRequest(c, "missing verification fields")
		return
	}

	order, err := h.facade.VerifyPayment(c.Request.Context(), usecase.VerificationCallback{
		OrderID:          req.OrderID,
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "payment verified",
		Data:    dto.FromOrder(order),
	})
}
