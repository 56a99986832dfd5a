package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/flowerbot/internal/server/http/dto"
)

const (
	userIDHeader  = "User-Id"
	isAdminHeader = "Is-Admin"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// List handles GET /api/order.
func (h *OrderHandler) List(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	isAdmin := c.GetHeader(isAdminHeader) == "true"

	orders, err := h.facade.Orders(c.Request.Context(), userID, isAdmin)
	if err != nil {
		h.logger.Error("list orders failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Submit handles POST /api/order.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Result{Success: false, Error: err.Error()})
		return
	}

	if _, err := h.facade.SubmitOrder(c.Request.Context(), req.ToModel()); err != nil {
		h.logger.Error("submit order failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Order processed successfully"})
}

// UpdateStatus handles PUT /api/order.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Result{Success: false, Error: err.Error()})
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), req.OrderID, req.StatusID); err != nil {
		h.logger.Error("update order failed", slog.Int64("order_id", req.OrderID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Order updated successfully"})
}

// Delete handles DELETE /api/order/<id>.
func (h *OrderHandler) Delete(c *gin.Context) {
	rawID := lastPathSegment(c.Request.URL.Path)
	if err := h.facade.DeleteOrder(c.Request.Context(), rawID); err != nil {
		h.logger.Error("delete order failed", slog.String("order_id", rawID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}

// Preflight answers CORS preflight requests for the order endpoints.
func (h *OrderHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
