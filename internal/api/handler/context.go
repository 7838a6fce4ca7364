package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/api/middleware"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// ctxAccount extracts the account resolved by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// wiring bug and the request is rejected rather than trusted.
func ctxAccount(c echo.Context) (*domain.User, error) {
	account, _ := c.Get(middleware.AccountKey).(*domain.User)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}
