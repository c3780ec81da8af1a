package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// UserHandler covers the authenticated profile routes and the admin user
// management routes.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Avatar    *string `json:"avatar"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked pending"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// Me returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataEnvelope[domain.User]
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.User]{Data: user})
}

// UpdateMe updates the authenticated user's editable profile fields.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields (absent fields are left unchanged)"
// @Success      200   {object}  dataEnvelope[domain.User]
// @Failure      401   {object}  errorResponse
// @Router       /v1/users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), ident.UserID, ports.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.User]{Data: user})
}

// List returns the paginated admin user listing.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Param        search      query     string  false  "Search name or email"
// @Param        role        query     string  false  "Filter by role"
// @Param        status      query     string  false  "Filter by status"
// @Success      200         {object}  listEnvelope[domain.User]
// @Failure      403         {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	filters := ports.UserFilters{
		SearchTerm: c.QueryParam("search"),
		Role:       c.QueryParam("role"),
		Status:     c.QueryParam("status"),
	}

	users, meta, err := h.users.ListUsers(c.Request().Context(), filters, q.options())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListEnvelope(users, meta))
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dataEnvelope[domain.User]
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope[*domain.User]{Data: user})
}

// ChangeStatus sets a user's account status.
//
// @Summary      Change user status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      changeStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/status [patch]
func (h *UserHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.ChangeStatus(c.Request().Context(), c.Param("id"), domain.UserStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}

// ChangeRole sets a user's role. Takes effect on the next token issuance.
//
// @Summary      Change user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	if err := h.users.ChangeRole(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}

// Delete soft-deletes a user account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
