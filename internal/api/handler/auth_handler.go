package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/api/metrics"
	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password"`
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required"`
	ContactNumber string `json:"contact_number"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type registerResponse struct {
	User *domain.Identity `json:"user"`
}

// RegisterAdvocate creates a new advocate account.
//
// @Summary      Register a new advocate
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Advocate registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register/advocate [post]
func (h *AuthHandler) RegisterAdvocate(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterAdvocate(c.Request().Context(), ports.RegisterInput{
		Username:      req.Username,
		Password:      req.Password,
		Email:         req.Email,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// RegisterClient creates a new client account with a server-generated
// password.
//
// @Summary      Register a new client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Client registration details (password ignored)"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register/client [post]
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterClient(c.Request().Context(), ports.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Login authenticates with username and password and returns a token
// pair with role and display name.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.TokenPair
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pair, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case domain.ErrIdentityNotFound:
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		// never reveal whether the username or the password was wrong
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, pair)
}

// Refresh exchanges a refresh token for a new access token.
//
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /token/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired refresh token")
	}

	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

// Profile returns the authenticated caller's identity.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /user/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	id, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	identity, err := h.authService.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// ActiveAdvocates lists active advocates. World-readable.
//
// @Summary      List active advocates
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.Identity
// @Router       /advocates/active [get]
func (h *AuthHandler) ActiveAdvocates(c echo.Context) error {
	advocates, err := h.authService.ActiveAdvocates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advocates)
}
