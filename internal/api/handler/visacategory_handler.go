package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// VisaCategoryHandler handles HTTP requests for visa categories.
type VisaCategoryHandler struct {
	service ports.VisaCategoryService
}

func NewVisaCategoryHandler(service ports.VisaCategoryService) *VisaCategoryHandler {
	return &VisaCategoryHandler{service: service}
}

// List returns the paginated visa category listing.
//
// @Summary      List visa categories
// @Tags         visa-categories
// @Produce      json
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Search name"
// @Success      200     {object}  listEnvelope[domain.VisaCategory]
// @Router       /v1/visa-categories [get]
func (h *VisaCategoryHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	filters := ports.VisaCategoryFilters{
		SearchTerm: c.QueryParam("search"),
		IsActive:   boolParam(c, "is_active"),
	}

	categories, meta, err := h.service.List(c.Request().Context(), filters, q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(categories, meta))
}

// Active returns the active categories, ordered for the public menu.
//
// @Summary      List active visa categories
// @Tags         visa-categories
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.VisaCategory]
// @Router       /v1/visa-categories/active [get]
func (h *VisaCategoryHandler) Active(c echo.Context) error {
	categories, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.VisaCategory]{Data: categories})
}

// Get returns a visa category by id.
//
// @Summary      Get a visa category
// @Tags         visa-categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  dataEnvelope[domain.VisaCategory]
// @Failure      404  {object}  errorResponse
// @Router       /v1/visa-categories/{id} [get]
func (h *VisaCategoryHandler) Get(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.VisaCategory]{Data: category})
}

// GetBySlug returns an active visa category by slug.
//
// @Summary      Get a visa category by slug
// @Tags         visa-categories
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  dataEnvelope[domain.VisaCategory]
// @Failure      404   {object}  errorResponse
// @Router       /v1/visa-categories/slug/{slug} [get]
func (h *VisaCategoryHandler) GetBySlug(c echo.Context) error {
	category, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.VisaCategory]{Data: category})
}

// Create stores a new visa category.
//
// @Summary      Create a visa category
// @Tags         visa-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.VisaCategory  true  "Category payload"
// @Success      201   {object}  dataEnvelope[domain.VisaCategory]
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/visa-categories [post]
func (h *VisaCategoryHandler) Create(c echo.Context) error {
	var category domain.VisaCategory
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if category.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &category)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("visacategories").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.VisaCategory]{Data: created})
}

// Update replaces a visa category's stored document.
//
// @Summary      Update a visa category
// @Tags         visa-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Category id"
// @Param        body  body      domain.VisaCategory  true  "Category payload"
// @Success      200   {object}  dataEnvelope[domain.VisaCategory]
// @Failure      404   {object}  errorResponse
// @Router       /v1/visa-categories/{id} [put]
func (h *VisaCategoryHandler) Update(c echo.Context) error {
	var category domain.VisaCategory
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.VisaCategory]{Data: updated})
}

// Delete removes a visa category.
//
// @Summary      Delete a visa category
// @Tags         visa-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/visa-categories/{id} [delete]
func (h *VisaCategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "visa category deleted"})
}
