package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/ports"
)

type ClientHandler struct {
	clientService  ports.ClientService
	caseService    ports.CaseService
	paymentService ports.PaymentService
}

func NewClientHandler(clients ports.ClientService, cases ports.CaseService, payments ports.PaymentService) *ClientHandler {
	return &ClientHandler{clientService: clients, caseService: cases, paymentService: payments}
}

type clientRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	Active        *bool  `json:"active"`
}

func (r clientRequest) toInput() ports.ClientInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return ports.ClientInput{
		FullName:      r.FullName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		Notes:         r.Notes,
		Active:        active,
	}
}

// pathID parses the :id route parameter. A malformed id is a 404, not a
// 400: the resource space is numeric and nothing else can exist.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return uint(id), nil
}

// List returns the caller's clients, newest first.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	clients, err := h.clientService.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create registers a new client record owned by the caller.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clientService.Create(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Get returns one of the caller's clients by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	client, err := h.clientService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Update replaces the mutable fields of one of the caller's clients.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Client ID"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clientService.Update(c.Request().Context(), ownerID, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete removes one of the caller's clients.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  int  true  "Client ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.clientService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Cases lists the caller's cases for one of their clients.
//
// @Summary      List a client's cases
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Client ID"
// @Success      200  {array}  domain.Case
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/cases [get]
func (h *ClientHandler) Cases(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cases, err := h.caseService.ListForClient(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Payments lists the payments recorded under one of the caller's
// clients.
//
// @Summary      List a client's payments
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Client ID"
// @Success      200  {array}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/payments [get]
func (h *ClientHandler) Payments(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payments, err := h.paymentService.ListForClient(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

type paymentRequest struct {
	CaseID        *uint   `json:"case_id"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" validate:"required"`
	PaymentMode   string  `json:"payment_mode"`
	ReceiptNumber string  `json:"receipt_number"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

// CreatePayment records a payment under one of the caller's clients.
//
// @Summary      Record a payment
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Client ID"
// @Param        body  body      paymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /clients/{id}/payments [post]
func (h *ClientHandler) CreatePayment(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.paymentService.CreateForClient(c.Request().Context(), ownerID, id, ports.PaymentInput{
		CaseID:        req.CaseID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMode:   req.PaymentMode,
		ReceiptNumber: req.ReceiptNumber,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}
