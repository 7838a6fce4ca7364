package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/api/metrics"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// RBAC enforces role-based access control against the account resolved by
// Auth. The allowed set is fixed at route registration time.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := c.Get(AccountKey).(*domain.User)
			if account == nil {
				metrics.AuthDeniedTotal.WithLabelValues("unknown_subject").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[account.Role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
