package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/jobboard-api/internal/api/metrics"
	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job application operations.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// List handles GET /v1/applications — public, paginated listing.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        page       query     int  false  "Page number (default 1)"
// @Param        page_size  query     int  false  "Page size (default 5)"
// @Success      200        {object}  listApplicationsResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.ListApplications(c.Request().Context(), page, pageSize)
	if err != nil {
		return err
	}

	items := make([]applicationResponse, len(result.Items))
	for i, a := range result.Items {
		items[i] = toApplicationResponse(a)
	}
	return c.JSON(http.StatusOK, listApplicationsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.TotalItems,
			Page:       result.Page,
			Limit:      result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/applications/:id.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.service.GetApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// ListByJob handles GET /v1/jobs/:id/applications — restricted to the
// employer who posted the job.
//
// @Summary      List a job's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {array}   applicationResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id}/applications [get]
func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListByJob(c.Request().Context(), c.Param("id"), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationListResponse(apps))
}

// ListMine handles GET /v1/me/applications — the acting candidate's own
// applications.
//
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   applicationResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/me/applications [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListByUser(c.Request().Context(), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationListResponse(apps))
}

// Create handles POST /v1/applications — candidate only; the applying user is
// taken from the token, never the payload.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applicationRequest  true  "Application details"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.CreateApplication(c.Request().Context(), toApplicationInput(req), actorID)
	if err != nil {
		return err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// Update handles PUT /v1/applications/:id. A missing or unowned application
// yields 404; the two cases are not distinguished.
//
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Application id"
// @Param        body  body      applicationRequest  true  "Application replacement"
// @Success      204   "updated"
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateApplication(c.Request().Context(), c.Param("id"), toApplicationInput(req), actorID)
	if err != nil {
		return err
	}
	if !updated {
		return echo.NewHTTPError(http.StatusNotFound, "application not found or not updated")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/applications/:id.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Security     BearerAuth
// @Param        id  path  string  true  "Application id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteApplication(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toApplicationInput(req applicationRequest) ports.ApplicationInput {
	return ports.ApplicationInput{
		UserID:      req.UserID,
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
		AppliedAt:   req.AppliedAt,
	}
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		JobID:       a.JobID,
		CoverLetter: a.CoverLetter,
		AppliedAt:   a.AppliedAt.UTC(),
	}
}

func toApplicationListResponse(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	return out
}
