package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/api/metrics"
	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// IssueHandler handles HTTP requests for issue reporting and triage.
type IssueHandler struct {
	service ports.IssueService
}

func NewIssueHandler(service ports.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

// Create handles POST /api/v1/issues.
//
// @Summary      Report a new issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIssueRequest  true  "Issue details"
// @Success      201   {object}  issueResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/v1/issues [post]
func (h *IssueHandler) Create(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req createIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.service.Create(c.Request().Context(), principal, ports.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.IssuesCreatedTotal.WithLabelValues(issue.Category).Inc()
	return c.JSON(http.StatusCreated, toIssueResponse(issue))
}

// ListMine handles GET /api/v1/issues/mine.
//
// @Summary      List the caller's own issues
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  issueResponse
// @Router       /api/v1/issues/mine [get]
func (h *IssueHandler) ListMine(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	issues, err := h.service.ListMine(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIssueResponses(issues))
}

// ListAll handles GET /api/v1/admin/issues.
//
// @Summary      List all issues for triage
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  issueResponse
// @Router       /api/v1/admin/issues [get]
func (h *IssueHandler) ListAll(c echo.Context) error {
	issues, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIssueResponses(issues))
}

// UpdateStatus handles PUT /api/v1/admin/issues/:id/status.
//
// @Summary      Update an issue's triage status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Issue ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  issueResponse
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /api/v1/admin/issues/{id}/status [put]
func (h *IssueHandler) UpdateStatus(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.service.UpdateStatus(c.Request().Context(), principal, c.Param("id"), domain.IssueStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIssueResponse(issue))
}

// Delete handles DELETE /api/v1/admin/issues/:id.
//
// @Summary      Delete an issue
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Issue ID"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /api/v1/admin/issues/{id} [delete]
func (h *IssueHandler) Delete(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Activity handles GET /api/v1/admin/issues/:id/activity.
//
// @Summary      Get an issue's activity trail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Issue ID"
// @Success      200  {array}   issueEventResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/v1/admin/issues/{id}/activity [get]
func (h *IssueHandler) Activity(c echo.Context) error {
	events, err := h.service.Activity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}
