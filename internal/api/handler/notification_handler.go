package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/core/ports"
)

// NotificationHandler registers browser push subscriptions.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Subscribe handles POST /api/notifications/subscribe.
//
// @Summary      Register a push subscription
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      subscribeRequest  true  "PushSubscription JSON from the browser"
// @Success      200   {object}  domain.PushSubscription
// @Failure      400   {object}  messageResponse
// @Router       /api/notifications/subscribe [post]
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sub, err := h.service.Subscribe(c.Request().Context(), ports.SubscribeInput{
		UserID:   req.UserID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}
