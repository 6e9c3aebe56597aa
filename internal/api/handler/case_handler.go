package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/ports"
)

type CaseHandler struct {
	caseService     ports.CaseService
	documentService ports.DocumentService
}

func NewCaseHandler(cases ports.CaseService, documents ports.DocumentService) *CaseHandler {
	return &CaseHandler{caseService: cases, documentService: documents}
}

type caseRequest struct {
	ClientID    uint   `json:"client_id" validate:"required"`
	CaseTitle   string `json:"case_title" validate:"required"`
	CaseNumber  string `json:"case_number"`
	CaseType    string `json:"case_type"`
	Status      string `json:"status" validate:"omitempty,oneof=Open Closed"`
	CourtName   string `json:"court_name"`
	NextHearing string `json:"next_hearing"`
}

func (r caseRequest) toInput() (ports.CaseInput, error) {
	in := ports.CaseInput{
		ClientID:   r.ClientID,
		CaseTitle:  r.CaseTitle,
		CaseNumber: r.CaseNumber,
		CaseType:   r.CaseType,
		Status:     r.Status,
		CourtName:  r.CourtName,
	}
	if r.NextHearing != "" {
		t, err := time.Parse("2006-01-02", r.NextHearing)
		if err != nil {
			return in, echo.NewHTTPError(http.StatusBadRequest, "next_hearing must be YYYY-MM-DD")
		}
		in.NextHearing = &t
	}
	return in, nil
}

// List returns the caller's cases, newest first.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Case
// @Router       /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	cases, err := h.caseService.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Create opens a new case against one of the caller's clients.
//
// @Summary      Create a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caseRequest  true  "Case details"
// @Success      201   {object}  domain.Case
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	kase, err := h.caseService.Create(c.Request().Context(), ownerID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, kase)
}

// Get returns one of the caller's cases by id.
//
// @Summary      Get a case
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Case ID"
// @Success      200  {object}  domain.Case
// @Failure      404  {object}  map[string]string
// @Router       /cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	kase, err := h.caseService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kase)
}

// Update replaces the mutable fields of one of the caller's cases.
//
// @Summary      Update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Case ID"
// @Param        body  body      caseRequest  true  "Case details"
// @Success      200   {object}  domain.Case
// @Failure      404   {object}  map[string]string
// @Router       /cases/{id} [put]
func (h *CaseHandler) Update(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	kase, err := h.caseService.Update(c.Request().Context(), ownerID, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kase)
}

// Delete removes one of the caller's cases.
//
// @Summary      Delete a case
// @Tags         cases
// @Security     BearerAuth
// @Param        id  path  int  true  "Case ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.caseService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Hearings lists the caller's cases with a hearing date, soonest first.
//
// @Summary      List hearings
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Case
// @Router       /hearings [get]
func (h *CaseHandler) Hearings(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	cases, err := h.caseService.Hearings(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Documents lists the documents filed against one of the caller's
// cases.
//
// @Summary      List a case's documents
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Case ID"
// @Success      200  {array}  domain.Document
// @Failure      404  {object}  map[string]string
// @Router       /cases/{id}/documents [get]
func (h *CaseHandler) Documents(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	docs, err := h.documentService.ListForCase(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}
