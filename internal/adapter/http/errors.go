package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	docDomain "idcard-backend/internal/domain/document"
	locDomain "idcard-backend/internal/domain/location"
	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/domain/user"
	"idcard-backend/internal/usecase/reporting"
)

// domainError maps domain sentinels to HTTP status codes. Every handler
// funnels usecase errors through here so the code/message pairing lives in
// one place and no handler matches on error strings.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, apptDomain.ErrNotFound),
		errors.Is(err, locDomain.ErrNotFound),
		errors.Is(err, docDomain.ErrNotFound),
		errors.Is(err, payDomain.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, locDomain.ErrHasAppointments):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrSessionNotFound),
		errors.Is(err, user.ErrSessionExpired):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrPaymentRequired),
		errors.Is(err, apptDomain.ErrSlotFull),
		errors.Is(err, appDomain.ErrInvalidStatus),
		errors.Is(err, appDomain.ErrInvalidIDType),
		errors.Is(err, appDomain.ErrRejectReasonNeeded),
		errors.Is(err, appDomain.ErrAlreadyBooked),
		errors.Is(err, apptDomain.ErrInvalidDate),
		errors.Is(err, apptDomain.ErrInvalidSlot),
		errors.Is(err, apptDomain.ErrInvalidStatus),
		errors.Is(err, locDomain.ErrNotAvailable),
		errors.Is(err, locDomain.ErrInvalidCapacity),
		errors.Is(err, locDomain.ErrNoAvailableDays),
		errors.Is(err, locDomain.ErrInvalidAvailableDay),
		errors.Is(err, docDomain.ErrInvalidType),
		errors.Is(err, docDomain.ErrApplicationFinalized),
		errors.Is(err, payDomain.ErrAmountMismatch),
		errors.Is(err, payDomain.ErrInvalidMethod),
		errors.Is(err, reporting.ErrInvalidPeriod):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
