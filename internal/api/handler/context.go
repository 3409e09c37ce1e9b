package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lionscafe/storefront/internal/api/middleware"
)

// actor names who is making the request for the logs: the staff token
// subject when the Auth middleware ran, otherwise "anonymous".
func actor(c echo.Context) string {
	if sub, _ := c.Get(middleware.CtxSubject).(string); sub != "" {
		return sub
	}
	return "anonymous"
}
