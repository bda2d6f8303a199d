package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// callerID returns the authenticated user id stored by the auth middleware.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return id, nil
}

// callerRole returns the authenticated role stored by the auth middleware.
func callerRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}
