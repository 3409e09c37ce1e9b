package handler

import "github.com/labstack/echo/v4"

// bindAndValidate decodes the request body into req and runs its validate tags.
// Bind failures are echo HTTPErrors (400); validation failures wrap
// domain.ErrValidation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
