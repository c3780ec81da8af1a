package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// VisaDocumentHandler handles HTTP requests for customer visa documents.
type VisaDocumentHandler struct {
	service ports.VisaDocumentService
}

func NewVisaDocumentHandler(service ports.VisaDocumentService) *VisaDocumentHandler {
	return &VisaDocumentHandler{service: service}
}

// List returns the paginated admin document listing.
//
// @Summary      List visa documents
// @Tags         visa-documents
// @Produce      json
// @Security     BearerAuth
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Page size"
// @Param        search   query     string  false  "Search applicant, reference or country"
// @Param        user_id  query     string  false  "Filter by owner"
// @Param        status   query     string  false  "Filter by status"
// @Success      200      {object}  listEnvelope[domain.VisaDocument]
// @Failure      403      {object}  errorResponse
// @Router       /v1/visa-documents [get]
func (h *VisaDocumentHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	filters := ports.VisaDocumentFilters{
		SearchTerm: c.QueryParam("search"),
		UserID:     c.QueryParam("user_id"),
		Status:     c.QueryParam("status"),
		Country:    c.QueryParam("country"),
		VisaType:   c.QueryParam("visa_type"),
	}

	docs, meta, err := h.service.List(c.Request().Context(), filters, q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(docs, meta))
}

// Mine returns the authenticated user's documents, newest first.
//
// @Summary      List own visa documents
// @Tags         visa-documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataEnvelope[[]domain.VisaDocument]
// @Failure      401  {object}  errorResponse
// @Router       /v1/visa-documents/my [get]
func (h *VisaDocumentHandler) Mine(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	docs, err := h.service.ListMine(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.VisaDocument]{Data: docs})
}

// Get returns a single document. Non-admin callers only see their own.
//
// @Summary      Get a visa document
// @Tags         visa-documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  dataEnvelope[domain.VisaDocument]
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/visa-documents/{id} [get]
func (h *VisaDocumentHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Get(c.Request().Context(), c.Param("id"), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.VisaDocument]{Data: doc})
}

// Create stores a new document on behalf of a customer. The caller is
// recorded as the creator and a reference number is generated.
//
// @Summary      Create a visa document
// @Tags         visa-documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.VisaDocument  true  "Document payload"
// @Success      201   {object}  dataEnvelope[domain.VisaDocument]
// @Failure      403   {object}  errorResponse
// @Router       /v1/visa-documents [post]
func (h *VisaDocumentHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var doc domain.VisaDocument
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if doc.UserID == "" || doc.ApplicantName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and applicant_name are required")
	}

	created, err := h.service.Create(c.Request().Context(), &doc, ident.UserID)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("visadocuments").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.VisaDocument]{Data: created})
}

// Update replaces a document's stored fields. Reference and creator are
// preserved.
//
// @Summary      Update a visa document
// @Tags         visa-documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Document id"
// @Param        body  body      domain.VisaDocument  true  "Document payload"
// @Success      200   {object}  dataEnvelope[domain.VisaDocument]
// @Failure      404   {object}  errorResponse
// @Router       /v1/visa-documents/{id} [put]
func (h *VisaDocumentHandler) Update(c echo.Context) error {
	var doc domain.VisaDocument
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.VisaDocument]{Data: updated})
}

// Delete removes a document.
//
// @Summary      Delete a visa document
// @Tags         visa-documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/visa-documents/{id} [delete]
func (h *VisaDocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "visa document deleted"})
}
