package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/nfrund/goby-forms/internal/view"
)

const rateLimitedMessage = "Too many submissions. Please wait a moment and try again."

// RateLimiter limits form submissions (POST requests) to perMinute requests per minute per IP.
// Denied requests are sent back to the page they posted to with an error flash,
// so the browser still ends on a GET. A perMinute of zero disables limiting.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	config := middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("submission rate limited", "client", identifier)
			view.SetFlashError(c, rateLimitedMessage)
			return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
