package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboard}
}

// Stats returns the advocate dashboard aggregate: counters, recent
// activity, and calendar markers.
//
// @Summary      Advocate dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	advocateID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	stats, err := h.dashboardService.Stats(c.Request().Context(), advocateID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// PortalHandler serves the client-facing reads. Everything is keyed by
// the email claim in the caller's token, not by record ownership.
type PortalHandler struct {
	portalService ports.PortalService
}

func NewPortalHandler(portal ports.PortalService) *PortalHandler {
	return &PortalHandler{portalService: portal}
}

// Cases lists the cases filed for client records matching the caller's
// email.
//
// @Summary      Client portal cases
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Case
// @Router       /client/cases [get]
func (h *PortalHandler) Cases(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	cases, err := h.portalService.CasesForEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Hearings lists the caller's upcoming hearings.
//
// @Summary      Client portal hearings
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Case
// @Router       /client/hearings [get]
func (h *PortalHandler) Hearings(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	cases, err := h.portalService.HearingsForEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Payments lists the payments recorded against the caller's client
// records.
//
// @Summary      Client portal payments
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /client/payments [get]
func (h *PortalHandler) Payments(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	payments, err := h.portalService.PaymentsForEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
