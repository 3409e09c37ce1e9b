package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/core/ports"
)

// UserHandler handles HTTP requests for storefront users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users. Registering an already known
// externalAuthId returns the stored user unchanged.
//
// @Summary      Register or fetch a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, _, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:          req.Email,
		Username:       req.Username,
		ExternalAuthID: req.ExternalAuthID,
		Preferences:    req.Preferences,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByExternalAuthID handles GET /api/users/:externalAuthId.
//
// @Summary      Get a user by external auth id
// @Tags         users
// @Produce      json
// @Param        externalAuthId  path      string  true  "Identity provider uid"
// @Success      200             {object}  domain.User
// @Failure      404             {object}  messageResponse
// @Router       /api/users/{externalAuthId} [get]
func (h *UserHandler) GetByExternalAuthID(c echo.Context) error {
	user, err := h.service.GetByExternalAuthID(c.Request().Context(), c.Param("externalAuthId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
