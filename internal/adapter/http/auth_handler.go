package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	mw "idcard-backend/internal/adapter/middleware"
	"idcard-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Login(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuthHandler) Me(c echo.Context) error {
	u := mw.CurrentUser(c)
	if u == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	raw := c.Request().Header.Get(echo.HeaderAuthorization)
	token := ""
	if i := strings.Index(raw, " "); i > 0 {
		token = strings.TrimSpace(raw[i+1:])
	}
	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
