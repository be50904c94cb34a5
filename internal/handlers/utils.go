package handlers

import (
	"fmt"
	"strconv"

	apierrors "finance-assistant/internal/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func sendInvalidID(c echo.Context, err error) error {
	return SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails(err.Error()))
}

// getIntParam reads an integer query parameter; ok is false when it is present but not a number
func getIntParam(c echo.Context, name string, defaultValue int) (int, bool) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, false
	}
	return value, true
}
