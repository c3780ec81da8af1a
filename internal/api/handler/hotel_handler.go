package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/api/metrics"
	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// HotelHandler handles HTTP requests for the hotel catalog.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) bindFilters(c echo.Context) ports.HotelFilters {
	return ports.HotelFilters{
		SearchTerm:    c.QueryParam("search"),
		IsActive:      boolParam(c, "is_active"),
		IsFeatured:    boolParam(c, "is_featured"),
		City:          c.QueryParam("city"),
		Country:       c.QueryParam("country"),
		StarRating:    intParam(c, "star_rating"),
		HotelCategory: c.QueryParam("hotel_category"),
		RoomType:      c.QueryParam("room_type"),
		Status:        c.QueryParam("status"),
		MinPrice:      floatParam(c, "min_price"),
		MaxPrice:      floatParam(c, "max_price"),
	}
}

// List returns the paginated hotel listing.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Param        page         query     int     false  "Page number"
// @Param        limit        query     int     false  "Page size"
// @Param        search       query     string  false  "Search name, city or country"
// @Param        city         query     string  false  "Filter by city"
// @Param        star_rating  query     int     false  "Filter by star rating"
// @Param        min_price    query     number  false  "Minimum price per night"
// @Param        max_price    query     number  false  "Maximum price per night"
// @Success      200          {object}  listEnvelope[domain.Hotel]
// @Router       /v1/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	hotels, meta, err := h.service.List(c.Request().Context(), h.bindFilters(c), q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(hotels, meta))
}

// Active returns the active hotels.
//
// @Summary      List active hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Hotel]
// @Router       /v1/hotels/active [get]
func (h *HotelHandler) Active(c echo.Context) error {
	hotels, err := h.service.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Hotel]{Data: hotels})
}

// Featured returns the featured hotels for the homepage.
//
// @Summary      List featured hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {object}  dataEnvelope[[]domain.Hotel]
// @Router       /v1/hotels/featured [get]
func (h *HotelHandler) Featured(c echo.Context) error {
	hotels, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[[]domain.Hotel]{Data: hotels})
}

// Get returns a hotel by id.
//
// @Summary      Get a hotel
// @Tags         hotels
// @Produce      json
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  dataEnvelope[domain.Hotel]
// @Failure      404  {object}  errorResponse
// @Router       /v1/hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Hotel]{Data: hotel})
}

// GetBySlug returns an active hotel by slug.
//
// @Summary      Get a hotel by slug
// @Tags         hotels
// @Produce      json
// @Param        slug  path      string  true  "Hotel slug"
// @Success      200   {object}  dataEnvelope[domain.Hotel]
// @Failure      404   {object}  errorResponse
// @Router       /v1/hotels/slug/{slug} [get]
func (h *HotelHandler) GetBySlug(c echo.Context) error {
	hotel, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Hotel]{Data: hotel})
}

// Create stores a new hotel.
//
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Hotel  true  "Hotel payload"
// @Success      201   {object}  dataEnvelope[domain.Hotel]
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	var hotel domain.Hotel
	if err := c.Bind(&hotel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if hotel.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &hotel)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("hotels").Inc()
	return c.JSON(http.StatusCreated, dataEnvelope[*domain.Hotel]{Data: created})
}

// Update replaces a hotel's stored document.
//
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Hotel id"
// @Param        body  body      domain.Hotel  true  "Hotel payload"
// @Success      200   {object}  dataEnvelope[domain.Hotel]
// @Failure      404   {object}  errorResponse
// @Router       /v1/hotels/{id} [put]
func (h *HotelHandler) Update(c echo.Context) error {
	var hotel domain.Hotel
	if err := c.Bind(&hotel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &hotel)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.Hotel]{Data: updated})
}

// Delete removes a hotel.
//
// @Summary      Delete a hotel
// @Tags         hotels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "hotel deleted"})
}
