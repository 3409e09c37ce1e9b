package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
	logger  zerolog.Logger
}

func NewOrderHandler(service ports.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

// Create handles POST /api/orders. New orders are always pending.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{ItemID: it.ItemID, Quantity: it.Quantity, Price: *it.Price})
	}

	order, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		UserID:    req.UserID,
		Items:     items,
		Total:     *req.Total,
		OrderType: req.OrderType,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  messageResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ListByUser handles GET /api/orders/user/:userId.
//
// @Summary      List a user's orders
// @Tags         orders
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.Order
// @Router       /api/orders/user/{userId} [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	orders, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status), ports.SourceStaff)
	if err != nil {
		return err
	}
	h.logger.Info().Str("order_id", order.ID).Str("status", req.Status).Str("actor", actor(c)).Msg("order status changed by staff")
	return c.JSON(http.StatusOK, order)
}
