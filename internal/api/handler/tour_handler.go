package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// TourHandler handles HTTP requests for the tour catalog.
type TourHandler struct {
	service ports.TourService
}

func NewTourHandler(service ports.TourService) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) bindFilters(c echo.Context) ports.TourFilters {
	return ports.TourFilters{
		SearchTerm:  c.QueryParam("search"),
		IsActive:    boolParam(c, "is_active"),
		IsFeatured:  boolParam(c, "is_featured"),
		Destination: c.QueryParam("destination"),
		Category:    c.QueryParam("category"),
		TourType:    c.QueryParam("tour_type"),
		Status:      c.QueryParam("status"),
		MinPrice:    floatParam(c, "min_price"),
		MaxPrice:    floatParam(c, "max_price"),
	}
}

// List returns the paginated tour listing.
//
// @Summary      List tours
// @Tags         tours
// @Produce      json
// @Param        page         query     int     false  "Page number"
// @Param        limit        query     int     false  "Page size"
// @Param        search       query     string  false  "Search title or destination"
// @Param        destination  query     string  false  "Filter by destination"
// @Param        category     query     string  false  "Filter by category"
// @Param        min_price    query     number  false  "Minimum price"
// @Param        max_price    query     number  false  "Maximum price"
// @Success      200          {object}  listEnvelope[domain.Tour]
// @Router       /v1/tours [get]
func (h *TourHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	tours, meta, err := h.service.List(c.Request().Context(), h.bindFilters(c), q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(tours, meta))
}

// Active returns the active tours.
//
// @Summary      List active tours
// @Tags         tours
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Tour]
// @Router       /v1/tours/active [get]
func (h *TourHandler) Active(c echo.Context) error {
	tours, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Tour]{Data: tours})
}

// Featured returns the featured tours for the homepage.
//
// @Summary      List featured tours
// @Tags         tours
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Tour]
// @Router       /v1/tours/featured [get]
func (h *TourHandler) Featured(c echo.Context) error {
	tours, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Tour]{Data: tours})
}

// Get returns a tour by id.
//
// @Summary      Get a tour
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour id"
// @Success      200  {object}  dataEnvelope[domain.Tour]
// @Failure      404  {object}  errorResponse
// @Router       /v1/tours/{id} [get]
func (h *TourHandler) Get(c echo.Context) error {
	tour, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Tour]{Data: tour})
}

// GetBySlug returns an active tour by slug.
//
// @Summary      Get a tour by slug
// @Tags         tours
// @Produce      json
// @Param        slug  path      string  true  "Tour slug"
// @Success      200   {object}  dataEnvelope[domain.Tour]
// @Failure      404   {object}  errorResponse
// @Router       /v1/tours/slug/{slug} [get]
func (h *TourHandler) GetBySlug(c echo.Context) error {
	tour, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Tour]{Data: tour})
}

// Create stores a new tour. The slug is allocated server-side from the
// title.
//
// @Summary      Create a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Tour  true  "Tour payload"
// @Success      201   {object}  dataEnvelope[domain.Tour]
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/tours [post]
func (h *TourHandler) Create(c echo.Context) error {
	var tour domain.Tour
	if err := c.Bind(&tour); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if tour.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	created, err := h.service.Create(c.Request().Context(), &tour)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("tours").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.Tour]{Data: created})
}

// Update replaces a tour's stored document.
//
// @Summary      Update a tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Tour id"
// @Param        body  body      domain.Tour  true  "Tour payload"
// @Success      200   {object}  dataEnvelope[domain.Tour]
// @Failure      404   {object}  errorResponse
// @Router       /v1/tours/{id} [put]
func (h *TourHandler) Update(c echo.Context) error {
	var tour domain.Tour
	if err := c.Bind(&tour); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &tour)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Tour]{Data: updated})
}

// Delete removes a tour.
//
// @Summary      Delete a tour
// @Tags         tours
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tour id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tours/{id} [delete]
func (h *TourHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "tour deleted"})
}
