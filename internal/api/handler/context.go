package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/api/middleware"
	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// requirePrincipal fetches the identity resolved by the auth middleware.
// Routes behind the policy always carry one; the 401 here is a safeguard
// against a handler being registered outside the policy's reach.
func requirePrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.CurrentPrincipal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return p, nil
}
