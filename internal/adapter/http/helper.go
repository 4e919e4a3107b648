package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	mw "idcard-backend/internal/adapter/middleware"
)

// ---- helpers ----

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func queryUint(c echo.Context, name string) (uint64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func pathUint(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// reviewerID identifies the acting admin for audit fields on reviewed rows.
func reviewerID(c echo.Context) string {
	if u := mw.CurrentUser(c); u != nil {
		return u.UserID
	}
	return ""
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
