package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/jobboard-api/internal/api/metrics"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job posting operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs — public, filtered, paginated listing.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        location   query     string  false  "Exact-match location filter"
// @Param        job_type   query     string  false  "Exact-match job type filter"  Enums(remote, full-time, part-time)
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        page_size  query     int     false  "Page size (default 5)"
// @Success      200        {object}  listJobsResponse
// @Failure      500        {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
		Location: c.QueryParam("location"),
		JobType:  c.QueryParam("job_type"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobListResponse(result))
}

// Get handles GET /v1/jobs/:id — public single-posting read.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// ListByEmployer handles GET /v1/employers/:id/jobs.
//
// @Summary      List an employer's job postings
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Employer id"
// @Success      200  {array}   jobResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/employers/{id}/jobs [get]
func (h *JobHandler) ListByEmployer(c echo.Context) error {
	jobs, err := h.service.ListJobsByEmployer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/jobs — employer only; ownership is taken from the
// token, never the payload.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job posting details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.CreateJob(c.Request().Context(), toJobInput(req), actorID)
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.JobType).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /v1/jobs/:id. A missing or unowned job yields 404; the
// two cases are not distinguished.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job posting replacement"
// @Success      204   "updated"
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateJob(c.Request().Context(), c.Param("id"), toJobInput(req), actorID)
	if err != nil {
		return err
	}
	if !updated {
		return echo.NewHTTPError(http.StatusNotFound, "job not found or not updated")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/jobs/:id.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteJob(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
