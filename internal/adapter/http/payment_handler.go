package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/infrastructure/payprovider"
	"idcard-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type processPaymentReq struct {
	ApplicationID  string            `json:"application_id"  validate:"required,appid"`
	Amount         float64           `json:"amount"          validate:"required,gte=0"`
	Method         string            `json:"method"          validate:"required,oneof=CARD MOBILE_MONEY BANK_TRANSFER"`
	PaymentDetails map[string]string `json:"payment_details"`
}

func (h *PaymentHandler) Process(c echo.Context) error {
	var req processPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Process(c.Request().Context(), payment.ProcessInput{
		ApplicationID: req.ApplicationID,
		Amount:        req.Amount,
		Method:        payDomain.Method(req.Method),
		Details:       payprovider.Details(req.PaymentDetails),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	dto, err := h.uc.Verify(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Methods(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"methods": payment.Methods()})
}
