package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apptDomain "idcard-backend/internal/domain/appointment"
	"idcard-backend/internal/usecase/booking"
	"idcard-backend/internal/usecase/review"
)

type AppointmentHandler struct {
	uc     *booking.Usecase
	review *review.Usecase
}

func NewAppointmentHandler(uc *booking.Usecase, rv *review.Usecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, review: rv}
}

type bookAppointmentReq struct {
	ApplicationID string `json:"application_id" validate:"required,appid"`
	LocationID    uint64 `json:"location_id"    validate:"required"`
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	TimeSlot      string `json:"time_slot"      validate:"required,timeslot"`
}

func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	dto, err := h.uc.Book(c.Request().Context(), booking.BookInput{
		ApplicationID: req.ApplicationID,
		LocationID:    req.LocationID,
		Date:          date,
		TimeSlot:      req.TimeSlot,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AppointmentHandler) Availability(c echo.Context) error {
	locationID, ok := queryUint(c, "location_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid location_id query param"})
	}
	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}

	dto, err := h.uc.Availability(c.Request().Context(), locationID, date)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AppointmentHandler) Confirmation(c echo.Context) error {
	dto, err := h.uc.FindByConfirmation(c.Request().Context(), c.Param("code"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AppointmentHandler) List(c echo.Context) error {
	f := apptDomain.ListFilter{
		Status: apptDomain.Status(c.QueryParam("status")),
	}
	if locationID, ok := queryUint(c, "location_id"); ok {
		f.LocationID = locationID
	}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
		}
		f.Date = &date
	}

	appts, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	if appts == nil {
		appts = []apptDomain.Appointment{}
	}
	return c.JSON(http.StatusOK, map[string]any{"appointments": appts})
}

type updateAppointmentReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	appointmentID := c.Param("appointmentId")
	if appointmentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing appointmentId path param"})
	}
	var req updateAppointmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.review.UpdateAppointmentStatus(c.Request().Context(), review.UpdateAppointmentInput{
		AppointmentID: appointmentID,
		Status:        apptDomain.Status(req.Status),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
