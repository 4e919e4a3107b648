package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appDomain "idcard-backend/internal/domain/application"
	"idcard-backend/internal/usecase/application"
	"idcard-backend/internal/usecase/reporting"
	"idcard-backend/internal/usecase/review"
)

type AdminHandler struct {
	reports      *reporting.Usecase
	review       *review.Usecase
	applications *application.Usecase
}

func NewAdminHandler(reports *reporting.Usecase, rv *review.Usecase, apps *application.Usecase) *AdminHandler {
	return &AdminHandler{reports: reports, review: rv, applications: apps}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	dto, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type bulkApproveReq struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,appid"`
}

func (h *AdminHandler) BulkApprove(c echo.Context) error {
	var req bulkApproveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.review.BulkApprove(c.Request().Context(), review.BulkApproveInput{
		ApplicationIDs: req.ApplicationIDs,
		ReviewerID:     reviewerID(c),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) Summary(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = "month"
	}
	dto, err := h.reports.Summary(c.Request().Context(), period)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

var exportHeader = []string{
	"application_id", "id_type", "first_name", "last_name", "email",
	"phone_number", "status", "payment_status", "payment_amount", "submitted_at",
}

// ExportApplications streams the filtered application list as CSV.
func (h *AdminHandler) ExportApplications(c echo.Context) error {
	f := appDomain.ExportFilter{
		Status: appDomain.Status(c.QueryParam("status")),
		IDType: appDomain.IDType(c.QueryParam("id_type")),
	}
	if raw := c.QueryParam("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date_from must be YYYY-MM-DD"})
		}
		f.DateFrom = &t
	}
	if raw := c.QueryParam("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date_to must be YYYY-MM-DD"})
		}
		f.DateTo = &t
	}

	apps, err := h.applications.Export(c.Request().Context(), f)
	if err != nil {
		return domainError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="applications-%s.csv"`, time.Now().UTC().Format("2006-01-02")))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, a := range apps {
		row := []string{
			a.ApplicationID,
			string(a.IDType),
			a.FirstName,
			a.LastName,
			a.Email,
			a.PhoneNumber,
			string(a.Status),
			string(a.PaymentStatus),
			fmt.Sprintf("%.2f", a.PaymentAmount),
			a.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
