package echoapi

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/ripoti/core"
)

const apiKeyHeader = "X-Api-Key"

// apiKeyMiddleware gates the API behind a static key.
// An empty configured key disables the gate (local development).
func apiKeyMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if conf.Server.APIKey == "" {
				return next(ctx)
			}
			key := ctx.Request().Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(conf.Server.APIKey)) == 1 {
				return next(ctx)
			}
			return errUnauthorized
		}
	}
}
