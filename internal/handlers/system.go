package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatsSource reports submission counters keyed by "page.handler".
type StatsSource interface {
	Snapshot() map[string]int64
}

// StatsResponse is the JSON body of GET /stats.
type StatsResponse struct {
	Submissions map[string]int64 `json:"submissions"`
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// StatsGet returns a handler that serves the current submission counters.
func StatsGet(src StatsSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		counts := src.Snapshot()
		if counts == nil {
			counts = map[string]int64{}
		}
		return c.JSON(http.StatusOK, StatsResponse{Submissions: counts})
	}
}
