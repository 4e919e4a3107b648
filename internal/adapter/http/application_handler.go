package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appDomain "idcard-backend/internal/domain/application"
	"idcard-backend/internal/usecase/application"
	"idcard-backend/internal/usecase/review"
)

type ApplicationHandler struct {
	uc     *application.Usecase
	review *review.Usecase
}

func NewApplicationHandler(uc *application.Usecase, rv *review.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, review: rv}
}

type createApplicationReq struct {
	IDType           string `json:"id_type"           validate:"required,oneof=FIRST RENEWAL LOST DAMAGED"`
	FirstName        string `json:"first_name"        validate:"required,max=100"`
	LastName         string `json:"last_name"         validate:"required,max=100"`
	DateOfBirth      string `json:"date_of_birth"     validate:"required,datetime=2006-01-02"`
	PlaceOfBirth     string `json:"place_of_birth"    validate:"required,max=100"`
	Nationality      string `json:"nationality"       validate:"required,max=100"`
	Gender           string `json:"gender"            validate:"required,oneof=MALE FEMALE"`
	MaritalStatus    string `json:"marital_status"    validate:"omitempty,oneof=SINGLE MARRIED DIVORCED WIDOWED"`
	Profession       string `json:"profession"        validate:"omitempty,max=100"`
	Address          string `json:"address"           validate:"required"`
	PhoneNumber      string `json:"phone_number"      validate:"required,phone"`
	Email            string `json:"email"             validate:"required,email"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=200"`
	EmergencyPhone   string `json:"emergency_phone"   validate:"omitempty,phone"`
	FatherName       string `json:"father_name"       validate:"omitempty,max=200"`
	FatherProfession string `json:"father_profession" validate:"omitempty,max=100"`
	MotherName       string `json:"mother_name"       validate:"omitempty,max=200"`
	MotherProfession string `json:"mother_profession" validate:"omitempty,max=100"`
	PreviousIDNumber string `json:"previous_id_number" validate:"omitempty,max=50"`
	ExpiryDate       string `json:"expiry_date"       validate:"omitempty,datetime=2006-01-02"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	in := application.CreateInput{
		IDType:           appDomain.IDType(req.IDType),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		PlaceOfBirth:     req.PlaceOfBirth,
		Nationality:      req.Nationality,
		Gender:           req.Gender,
		MaritalStatus:    req.MaritalStatus,
		Profession:       req.Profession,
		Address:          req.Address,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		FatherName:       req.FatherName,
		FatherProfession: req.FatherProfession,
		MotherName:       req.MotherName,
		MotherProfession: req.MotherProfession,
		PreviousIDNumber: req.PreviousIDNumber,
	}
	if req.ExpiryDate != "" {
		exp, _ := time.Parse("2006-01-02", req.ExpiryDate)
		in.ExpiryDate = &exp
	}

	a, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("applicationId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	f := appDomain.ListFilter{
		Status: appDomain.Status(c.QueryParam("status")),
		IDType: appDomain.IDType(c.QueryParam("id_type")),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}
	dto, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing q query param"})
	}
	apps, err := h.uc.Search(c.Request().Context(), appDomain.SearchFilter{
		Query: q,
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": apps})
}

type updateStatusReq struct {
	Status          string `json:"status"           validate:"required"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	applicationID := c.Param("applicationId")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing applicationId path param"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	a, err := h.review.UpdateStatus(c.Request().Context(), review.UpdateStatusInput{
		ApplicationID:   applicationID,
		Status:          appDomain.Status(req.Status),
		RejectionReason: req.RejectionReason,
		ReviewerID:      reviewerID(c),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
