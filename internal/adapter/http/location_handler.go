package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	locDomain "idcard-backend/internal/domain/location"
	"idcard-backend/internal/usecase/location"
)

type LocationHandler struct{ uc *location.Usecase }

func NewLocationHandler(uc *location.Usecase) *LocationHandler { return &LocationHandler{uc: uc} }

func (h *LocationHandler) List(c echo.Context) error {
	locs, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"locations": locs})
}

func (h *LocationHandler) Get(c echo.Context) error {
	id, ok := pathUint(c, "locationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid locationId path param"})
	}
	loc, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, loc)
}

type createLocationReq struct {
	Name          string `json:"name"           validate:"required,max=255"`
	Address       string `json:"address"        validate:"required"`
	District      string `json:"district"       validate:"omitempty,max=100"`
	WorkingHours  string `json:"working_hours"  validate:"omitempty,max=64"`
	AvailableDays []int  `json:"available_days" validate:"required,min=1,dive,gte=0,lte=6"`
	Capacity      int    `json:"capacity"       validate:"omitempty,gte=1"`
}

func (h *LocationHandler) Create(c echo.Context) error {
	var req createLocationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	loc, err := h.uc.Create(c.Request().Context(), location.CreateInput{
		Name:          req.Name,
		Address:       req.Address,
		District:      req.District,
		WorkingHours:  req.WorkingHours,
		AvailableDays: locDomain.Days(req.AvailableDays),
		Capacity:      req.Capacity,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, loc)
}

type updateLocationReq struct {
	Name          *string `json:"name"           validate:"omitempty,max=255"`
	Address       *string `json:"address"`
	District      *string `json:"district"       validate:"omitempty,max=100"`
	WorkingHours  *string `json:"working_hours"  validate:"omitempty,max=64"`
	AvailableDays *[]int  `json:"available_days" validate:"omitempty,min=1,dive,gte=0,lte=6"`
	Capacity      *int    `json:"capacity"       validate:"omitempty,gte=1"`
	IsActive      *bool   `json:"is_active"`
}

func (h *LocationHandler) Update(c echo.Context) error {
	id, ok := pathUint(c, "locationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid locationId path param"})
	}
	var req updateLocationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := location.UpdateInput{
		Name:         req.Name,
		Address:      req.Address,
		District:     req.District,
		WorkingHours: req.WorkingHours,
		Capacity:     req.Capacity,
		IsActive:     req.IsActive,
	}
	if req.AvailableDays != nil {
		days := locDomain.Days(*req.AvailableDays)
		in.AvailableDays = &days
	}

	loc, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, loc)
}

func (h *LocationHandler) Deactivate(c echo.Context) error {
	id, ok := pathUint(c, "locationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid locationId path param"})
	}
	loc, err := h.uc.Deactivate(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, loc)
}

func (h *LocationHandler) Stats(c echo.Context) error {
	id, ok := pathUint(c, "locationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid locationId path param"})
	}
	dto, err := h.uc.Stats(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
