package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/api/metrics"
	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type OTPHandler struct {
	otpService ports.OTPService
}

func NewOTPHandler(otpService ports.OTPService) *OTPHandler {
	return &OTPHandler{otpService: otpService}
}

type otpRequestBody struct {
	Email string `json:"email" validate:"required,email"`
}

type otpVerifyBody struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// Request issues a one-time login code to the given email address.
//
// @Summary      Request a login code
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        body  body      otpRequestBody  true  "Destination email"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /otp/request [post]
func (h *OTPHandler) Request(c echo.Context) error {
	var req otpRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.otpService.RequestCode(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			metrics.OTPRateLimitedTotal.Inc()
		}
		return err
	}

	metrics.OTPIssuedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "verification code sent"})
}

// Verify exchanges a valid code for a session token pair.
//
// @Summary      Verify a login code
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        body  body      otpVerifyBody  true  "Email and six-digit code"
// @Success      200   {object}  ports.TokenPair
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /otp/verify [post]
func (h *OTPHandler) Verify(c echo.Context) error {
	var req otpVerifyBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, _, err := h.otpService.VerifyCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		metrics.OTPVerifiedTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.OTPVerifiedTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, pair)
}
