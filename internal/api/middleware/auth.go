package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/api/metrics"
	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

// AccountKey is the context key under which Auth stores the resolved account.
const AccountKey = "account"

// Auth validates the bearer token and resolves its subject against the
// credential store on every request. Later authorization reads the stored
// account, not the token's embedded role claim, so role changes and
// deletions take effect immediately even for unexpired tokens.
func Auth(codec *auth.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDeniedTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues(decodeReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			account, err := users.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// Deleted after issuance: the token no longer
					// resolves to an identity.
					metrics.AuthDeniedTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				// A store failure is not the caller's fault; let the
				// error handler report it.
				return err
			}

			c.Set(AccountKey, account)
			c.Set("username", account.Username)
			c.Set("role", string(account.Role))

			return next(c)
		}
	}
}

func decodeReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
