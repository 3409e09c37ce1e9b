package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// ReservationHandler handles HTTP requests for table reservations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create handles POST /api/reservations.
//
// @Summary      Book a table
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      createReservationRequest  true  "Reservation"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  messageResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.service.CreateReservation(c.Request().Context(), ports.CreateReservationInput{
		UserID:          req.UserID,
		Date:            req.Date,
		PartySize:       req.PartySize,
		Status:          domain.ReservationStatus(req.Status),
		SpecialRequests: req.SpecialRequests,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// ListByUser handles GET /api/reservations/user/:userId.
//
// @Summary      List a user's reservations
// @Tags         reservations
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.Reservation
// @Router       /api/reservations/user/{userId} [get]
func (h *ReservationHandler) ListByUser(c echo.Context) error {
	list, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateStatus handles PATCH /api/reservations/:id/status.
//
// @Summary      Change a reservation's status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Reservation id"
// @Param        body  body      updateStatusRequest  true  "confirmed, cancelled or completed"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}
