package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/core/ports"
)

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List handles GET /api/menu.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        category  query     string  false  "Filter by category"  Enums(bakery, coffee, beverages, meals)
// @Success      200       {array}   domain.MenuItem
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  messageResponse
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/menu.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "Menu item"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		Ingredients: req.Ingredients,
		Allergens:   req.Allergens,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Update handles PATCH /api/menu/:id. Omitted fields are left unchanged.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Menu item id"
// @Param        body  body      updateMenuItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
