package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Rendering happens in the central HTTP error handler; this type
// exists for the swagger contract.
type errorResponse struct {
	Error string `json:"error"`
}

// listQuery binds the pagination and sorting query parameters shared by
// every list endpoint.
type listQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

func (q listQuery) options() ports.ListOptions {
	return ports.ListOptions{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
}

// listEnvelope is the canonical paginated response shape.
type listEnvelope[T any] struct {
	Data []T            `json:"data"`
	Meta ports.ListMeta `json:"meta"`
}

func newListEnvelope[T any](data []T, meta ports.ListMeta) listEnvelope[T] {
	if data == nil {
		data = []T{}
	}
	return listEnvelope[T]{Data: data, Meta: meta}
}

// dataEnvelope wraps single records and unpaginated collections.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func bindListQuery(c echo.Context) (listQuery, error) {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return listQuery{}, err
	}
	return q, nil
}

// boolParam parses an optional "true"/"false" query parameter; anything
// else, including absence, yields nil.
func boolParam(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// floatParam parses an optional float query parameter; invalid or absent
// values yield nil.
func floatParam(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// intParam parses an optional integer query parameter; invalid or absent
// values yield nil.
func intParam(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
