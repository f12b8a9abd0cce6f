package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// UserHandler exposes the authenticated user's own profile.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /api/v1/users/me.
//
// @Summary      Get the caller's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/v1/users/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PUT /api/v1/users/me.
//
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  profileResponse
// @Failure      409   {object}  map[string]any
// @Router       /api/v1/users/me [put]
func (h *UserHandler) Update(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.UpdateEmail(c.Request().Context(), principal, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /api/v1/users/me.
//
// @Summary      Delete the caller's account and everything it owns
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]any
// @Router       /api/v1/users/me [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProfileResponse(p *ports.UserProfile) profileResponse {
	return profileResponse{ID: p.ID, Username: p.Username, Email: p.Email, Role: p.Role}
}
