package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/api/metrics"
	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type AppointmentHandler struct {
	appointmentService ports.AppointmentService
}

func NewAppointmentHandler(appointments ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointments}
}

type bookAppointmentRequest struct {
	AdvocateID      uint   `json:"advocate_id" validate:"required"`
	ClientEmail     string `json:"client_email" validate:"omitempty,email"`
	ClientName      string `json:"client_name"`
	ClientContact   string `json:"client_contact"`
	ClientAddress   string `json:"client_address"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Duration        int    `json:"duration"`
	Purpose         string `json:"purpose"`
}

type appointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

// List returns the advocate's appointments, newest first.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	advocateID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	appts, err := h.appointmentService.ListForAdvocate(c.Request().Context(), advocateID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// Book creates a pending appointment against an active advocate. The
// client contact fields default from the caller's own claims, so a
// signed-in client books for themselves with just an advocate and a
// slot; the record is found or created from the resolved email.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Booking details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.ClientEmail == "" {
		email, err := ctxEmail(c)
		if err != nil {
			return err
		}
		req.ClientEmail = email
	}
	if req.ClientName == "" {
		if name, _ := c.Get("full_name").(string); name != "" {
			req.ClientName = name
		} else {
			req.ClientName = req.ClientEmail
		}
	}

	appt, err := h.appointmentService.Book(c.Request().Context(), ports.BookAppointmentInput{
		AdvocateID:      req.AdvocateID,
		ClientEmail:     req.ClientEmail,
		ClientName:      req.ClientName,
		ClientContact:   req.ClientContact,
		ClientAddress:   req.ClientAddress,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Duration:        req.Duration,
		Purpose:         req.Purpose,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusCreated, appt)
}

// UpdateStatus advances one of the advocate's appointments through the
// status machine.
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Appointment ID"
// @Param        body  body      appointmentStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	advocateID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req appointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next := domain.AppointmentStatus(req.Status)
	appt, err := h.appointmentService.UpdateStatus(c.Request().Context(), advocateID, id, next)
	if err != nil {
		metrics.AppointmentTransitionsTotal.WithLabelValues(req.Status, "failure").Inc()
		return err
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(req.Status, "success").Inc()
	return c.JSON(http.StatusOK, appt)
}
