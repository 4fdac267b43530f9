package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/server/http/dto"
)

// OrderHandler manages order placement and admin order management.
type OrderHandler struct {
	facade FulfillmentFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade FulfillmentFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromOrder(order)))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		OrderStatus:   model.OrderStatus(c.Query("orderStatus")),
		PaymentStatus: model.PaymentStatus(c.Query("paymentStatus")),
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.FromOrder(&orders[i]))
	}
	c.JSON(http.StatusOK, dto.OKList(response, len(response)))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromOrder(order)))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.OrderStatus != "" && !model.ValidOrderStatus(model.OrderStatus(req.OrderStatus)) {
		badRequest(c, "unknown order status")
		return
	}

	order, err := h.facade.UpdateOrderStatus(
		c.Request.Context(),
		c.Param("id"),
		model.OrderStatus(req.OrderStatus),
		model.PaymentStatus(req.PaymentStatus),
		req.TrackingNumber,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromOrder(order)))
}
