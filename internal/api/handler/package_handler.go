package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// PackageHandler handles HTTP requests for Hajj/Umrah packages.
type PackageHandler struct {
	service ports.PackageService
}

func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) bindFilters(c echo.Context) ports.PackageFilters {
	return ports.PackageFilters{
		SearchTerm: c.QueryParam("search"),
		Type:       c.QueryParam("type"),
		Status:     c.QueryParam("status"),
		IsActive:   boolParam(c, "is_active"),
		IsFeatured: boolParam(c, "is_featured"),
		IsPopular:  boolParam(c, "is_popular"),
	}
}

// List returns the paginated package listing.
//
// @Summary      List Hajj/Umrah packages
// @Tags         packages
// @Produce      json
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Search name or subtitle"
// @Param        type    query     string  false  "Filter by package type (hajj/umrah)"
// @Success      200     {object}  listEnvelope[domain.HajjUmrahPackage]
// @Router       /v1/packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	packages, meta, err := h.service.List(c.Request().Context(), h.bindFilters(c), q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(packages, meta))
}

// Featured returns the featured packages for the homepage. This read is
// cached with a short TTL.
//
// @Summary      List featured packages
// @Tags         packages
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.HajjUmrahPackage]
// @Router       /v1/packages/featured [get]
func (h *PackageHandler) Featured(c echo.Context) error {
	packages, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.HajjUmrahPackage]{Data: packages})
}

// Get returns a package by id.
//
// @Summary      Get a package
// @Tags         packages
// @Produce      json
// @Param        id   path      string  true  "Package id"
// @Success      200  {object}  dataEnvelope[domain.HajjUmrahPackage]
// @Failure      404  {object}  errorResponse
// @Router       /v1/packages/{id} [get]
func (h *PackageHandler) Get(c echo.Context) error {
	pkg, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.HajjUmrahPackage]{Data: pkg})
}

// GetBySlug returns an active package by slug.
//
// @Summary      Get a package by slug
// @Tags         packages
// @Produce      json
// @Param        slug  path      string  true  "Package slug"
// @Success      200   {object}  dataEnvelope[domain.HajjUmrahPackage]
// @Failure      404   {object}  errorResponse
// @Router       /v1/packages/slug/{slug} [get]
func (h *PackageHandler) GetBySlug(c echo.Context) error {
	pkg, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.HajjUmrahPackage]{Data: pkg})
}

// Create stores a new package.
//
// @Summary      Create a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.HajjUmrahPackage  true  "Package payload"
// @Success      201   {object}  dataEnvelope[domain.HajjUmrahPackage]
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var pkg domain.HajjUmrahPackage
	if err := c.Bind(&pkg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if pkg.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &pkg)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("packages").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.HajjUmrahPackage]{Data: created})
}

// Update replaces a package's stored document.
//
// @Summary      Update a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Package id"
// @Param        body  body      domain.HajjUmrahPackage  true  "Package payload"
// @Success      200   {object}  dataEnvelope[domain.HajjUmrahPackage]
// @Failure      404   {object}  errorResponse
// @Router       /v1/packages/{id} [put]
func (h *PackageHandler) Update(c echo.Context) error {
	var pkg domain.HajjUmrahPackage
	if err := c.Bind(&pkg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &pkg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.HajjUmrahPackage]{Data: updated})
}

// Delete removes a package.
//
// @Summary      Delete a package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Package id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/packages/{id} [delete]
func (h *PackageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "package deleted"})
}
