// Package handler contains the HTTP layer: one handler per resource,
// each translating requests into data access calls and results back
// into the JSON bodies the legacy API emitted. Handlers depend on small
// store interfaces satisfied by the concrete repositories so they can
// be exercised in tests without a database.
package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every storage round-trip started from a handler.
const dbTimeout = 5 * time.Second

// parseID converts the named path parameter into a numeric id.
func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
