package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user id from the context.
// JWT numeric claims arrive as float64; other types are tolerated
// for tests that set the value directly.
func getUserID(c echo.Context) (uint64, error) {
	return claimUint(c, "user_id")
}

// getHallID extracts the hall claim; 0 means no hall.
func getHallID(c echo.Context) uint64 {
	id, _ := claimUint(c, "hall_id")
	return id
}

// getRole extracts the role claim.
func getRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

func claimUint(c echo.Context, key string) (uint64, error) {
	switch t := c.Get(key).(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid " + key + " in context")
}

// queryUint parses an optional unsigned query parameter; absent or
// malformed values return 0.
func queryUint(c echo.Context, name string) uint64 {
	v := c.QueryParam(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
