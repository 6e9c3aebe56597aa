package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/ports"
)

type TemplateHandler struct {
	templateService ports.TemplateService
}

func NewTemplateHandler(templates ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templates}
}

type templateRequest struct {
	TemplateName string `json:"template_name" validate:"required"`
	Category     string `json:"category"`
	FilePath     string `json:"file_path"`
}

// List returns the caller's document templates.
//
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Template
// @Router       /templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	templates, err := h.templateService.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, templates)
}

// Create registers a new document template.
//
// @Summary      Create a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      templateRequest  true  "Template details"
// @Success      201   {object}  domain.Template
// @Failure      400   {object}  map[string]string
// @Router       /templates [post]
func (h *TemplateHandler) Create(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	template, err := h.templateService.Create(c.Request().Context(), ownerID, ports.TemplateInput{
		TemplateName: req.TemplateName,
		Category:     req.Category,
		FilePath:     req.FilePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, template)
}

// Get returns one of the caller's templates by id.
//
// @Summary      Get a template
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Template ID"
// @Success      200  {object}  domain.Template
// @Failure      404  {object}  map[string]string
// @Router       /templates/{id} [get]
func (h *TemplateHandler) Get(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	template, err := h.templateService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, template)
}

// Delete removes one of the caller's templates.
//
// @Summary      Delete a template
// @Tags         templates
// @Security     BearerAuth
// @Param        id  path  int  true  "Template ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /templates/{id} [delete]
func (h *TemplateHandler) Delete(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.templateService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
