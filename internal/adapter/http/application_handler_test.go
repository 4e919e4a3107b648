package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	"idcard-backend/internal/testutil/applicationmock"
	"idcard-backend/internal/testutil/appointmentmock"
	"idcard-backend/internal/testutil/documentmock"
	"idcard-backend/internal/testutil/locationmock"
	"idcard-backend/internal/testutil/uowmock"
	uc "idcard-backend/internal/usecase/application"
	reviewuc "idcard-backend/internal/usecase/review"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newApplicationHandler(apps *applicationmock.Repo) *ApplicationHandler {
	usecase := uc.NewUsecase(apps, &documentmock.Repo{}, &appointmentmock.Repo{}, &locationmock.Repo{})
	review := reviewuc.NewUsecase(apps, &appointmentmock.Repo{}, uowmock.New())
	return NewApplicationHandler(usecase, review)
}

func validCreateBody() map[string]any {
	return map[string]any{
		"id_type":        "FIRST",
		"first_name":     "Ama",
		"last_name":      "Diallo",
		"date_of_birth":  "1995-04-12",
		"place_of_birth": "Douala",
		"nationality":    "Cameroonian",
		"gender":         "FEMALE",
		"address":        "12 Rue des Manguiers",
		"phone_number":   "+237 600000001",
		"email":          "ama@example.test",
	}
}

// -------- tests --------

func TestCreateApplication_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{
		CreateFn: func(ctx context.Context, a *appDomain.Application) error {
			a.ID = 1
			return nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(validCreateBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got appDomain.Application
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !strings.HasPrefix(got.ApplicationID, "IDC-") {
		t.Fatalf("application_id = %q, want IDC- prefix", got.ApplicationID)
	}
	if got.PaymentAmount != 10000 || got.Status != appDomain.StatusPendingReview {
		t.Fatalf("unexpected application: %+v", got)
	}
}

func TestCreateApplication_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", strings.NewReader(`{"id_type":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestCreateApplication_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{}) // must not be called

	body := validCreateBody()
	body["id_type"] = "PASSPORT"
	body["date_of_birth"] = "12/04/1995"
	body["email"] = "not-an-email"

	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "IDType", "must be one of") {
		t.Fatalf("missing id_type error: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "DateOfBirth", "must match format") {
		t.Fatalf("missing date error: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Email", "email address") {
		t.Fatalf("missing email error: %+v", er.Details)
	}
}

func TestGetApplication_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, applicationID string) (*appDomain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/applications/IDC-404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("applicationId")
	c.SetParamValues("IDC-404")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateApplicationStatus_RejectWithoutReason(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, applicationID string) (*appDomain.Application, error) {
			return &appDomain.Application{ApplicationID: applicationID, Status: appDomain.StatusPendingReview}, nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPatch, "/applications/IDC-1/status",
		mustJSON(map[string]any{"status": "REJECTED"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("applicationId")
	c.SetParamValues("IDC-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchApplications_MissingQuery(t *testing.T) {
	e := newEchoWithValidator()
	h := newApplicationHandler(&applicationmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/applications/search/query", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
