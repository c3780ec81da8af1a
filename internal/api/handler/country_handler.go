package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// CountryHandler handles HTTP requests for the country catalog.
type CountryHandler struct {
	service ports.CountryService
}

func NewCountryHandler(service ports.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

func (h *CountryHandler) bindFilters(c echo.Context) ports.CountryFilters {
	return ports.CountryFilters{
		SearchTerm:     c.QueryParam("search"),
		IsActive:       boolParam(c, "is_active"),
		IsFeatured:     boolParam(c, "is_featured"),
		Region:         c.QueryParam("region"),
		SubmissionType: c.QueryParam("submission_type"),
	}
}

// List returns the paginated country listing.
//
// @Summary      List countries
// @Tags         countries
// @Produce      json
// @Param        page             query     int     false  "Page number"
// @Param        limit            query     int     false  "Page size"
// @Param        search           query     string  false  "Search name or region"
// @Param        region           query     string  false  "Filter by region"
// @Param        submission_type  query     string  false  "Filter by submission type"
// @Success      200              {object}  listEnvelope[domain.Country]
// @Router       /v1/countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	countries, meta, err := h.service.List(c.Request().Context(), h.bindFilters(c), q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(countries, meta))
}

// Active returns the slim active-country listing for public menus.
//
// @Summary      List active countries
// @Tags         countries
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Country]
// @Router       /v1/countries/active [get]
func (h *CountryHandler) Active(c echo.Context) error {
	countries, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Country]{Data: countries})
}

// Featured returns the featured countries for the homepage.
//
// @Summary      List featured countries
// @Tags         countries
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Country]
// @Router       /v1/countries/featured [get]
func (h *CountryHandler) Featured(c echo.Context) error {
	countries, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Country]{Data: countries})
}

// Get returns a country by id.
//
// @Summary      Get a country
// @Tags         countries
// @Produce      json
// @Param        id   path      string  true  "Country id"
// @Success      200  {object}  dataEnvelope[domain.Country]
// @Failure      404  {object}  errorResponse
// @Router       /v1/countries/{id} [get]
func (h *CountryHandler) Get(c echo.Context) error {
	country, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Country]{Data: country})
}

// GetBySlug returns an active country by slug.
//
// @Summary      Get a country by slug
// @Tags         countries
// @Produce      json
// @Param        slug  path      string  true  "Country slug"
// @Success      200   {object}  dataEnvelope[domain.Country]
// @Failure      404   {object}  errorResponse
// @Router       /v1/countries/slug/{slug} [get]
func (h *CountryHandler) GetBySlug(c echo.Context) error {
	country, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Country]{Data: country})
}

// Create stores a new country. The slug is allocated server-side from the
// name.
//
// @Summary      Create a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Country  true  "Country payload"
// @Success      201   {object}  dataEnvelope[domain.Country]
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/countries [post]
func (h *CountryHandler) Create(c echo.Context) error {
	var country domain.Country
	if err := c.Bind(&country); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if country.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &country)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("countries").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.Country]{Data: created})
}

// Update replaces a country's stored document.
//
// @Summary      Update a country
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Country id"
// @Param        body  body      domain.Country  true  "Country payload"
// @Success      200   {object}  dataEnvelope[domain.Country]
// @Failure      404   {object}  errorResponse
// @Router       /v1/countries/{id} [put]
func (h *CountryHandler) Update(c echo.Context) error {
	var country domain.Country
	if err := c.Bind(&country); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &country)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Country]{Data: updated})
}

// Delete removes a country.
//
// @Summary      Delete a country
// @Tags         countries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Country id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/countries/{id} [delete]
func (h *CountryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "country deleted"})
}
