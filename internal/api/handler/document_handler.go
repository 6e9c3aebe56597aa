package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/ports"
)

type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documents ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documents}
}

type documentRequest struct {
	CaseID       uint   `json:"case_id" validate:"required"`
	DocumentName string `json:"document_name" validate:"required"`
	FileType     string `json:"file_type"`
	FilePath     string `json:"file_path"`
}

// List returns every document filed under the caller's cases.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Document
// @Router       /documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	docs, err := h.documentService.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create registers a document against one of the caller's cases.
//
// @Summary      Register a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      documentRequest  true  "Document details"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req documentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.documentService.Create(c.Request().Context(), ownerID, ports.DocumentInput{
		CaseID:       req.CaseID,
		DocumentName: req.DocumentName,
		FileType:     req.FileType,
		FilePath:     req.FilePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}
