package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

// JobsHandler serves jobs, their employees and the LinkedIn discovery flows.
type JobsHandler struct {
	JobService       *service.JobService
	EmployeeService  *service.EmployeeService
	DiscoveryService *service.DiscoveryService
}

// HandleList handles GET /api/jobs
//
//	@Summary		List jobs
//	@Description	Newest first.
//	@Tags			Jobs
//	@Produce		json
//	@Param			limit	query		int	false	"maximum number of jobs"
//	@Success		200		{array}		mutualsdk.Job
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs [get].
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParams(w, r, "limit")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	jobs, err := h.JobService.List(r.Context(), userID, int(q["limit"]))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(jobs, toJob))
}

// HandleCreate handles POST /api/jobs
//
//	@Summary		Add a job by hand
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.CreateJobRequest	true	"job"
//	@Success		201		{object}	mutualsdk.Job
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs [post].
func (h *JobsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.CreateJobRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	job, err := h.JobService.Create(r.Context(), userID, service.JobInput{
		Title:      req.Title,
		Company:    req.Company,
		Location:   req.Location,
		JobURL:     req.JobURL,
		PostedDate: req.PostedDate,
		LogoURL:    req.LogoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toJob(job))
}

// HandleGet handles GET /api/jobs/{id}
//
//	@Summary		Get a job
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		int	true	"job id"
//	@Success		200	{object}	mutualsdk.Job
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs/{id} [get].
func (h *JobsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	job, err := h.JobService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJob(job))
}

// HandleDelete handles DELETE /api/jobs/{id}
//
//	@Summary		Delete a job
//	@Description	Removes the job with its employees and mutuals. Refused once any message was written for it.
//	@Tags			Jobs
//	@Param			id	path	int	true	"job id"
//	@Success		204
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Failure		409	{object}	mutualsdk.ErrorResponse	"job has outreach history"
//	@Security		SessionCookie
//	@Router			/api/jobs/{id} [delete].
func (h *JobsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	if err := h.JobService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListEmployees handles GET /api/jobs/{id}/employees
//
//	@Summary		List a job's employees
//	@Tags			Employees
//	@Produce		json
//	@Param			id	path		int	true	"job id"
//	@Success		200	{array}		mutualsdk.Employee
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs/{id}/employees [get].
func (h *JobsHandler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	emps, err := h.EmployeeService.ListByJob(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(emps, toEmployee))
}

// HandleCreateEmployee handles POST /api/jobs/{id}/employees
//
//	@Summary		Add an employee to a job
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"job id"
//	@Param			request	body		mutualsdk.CreateEmployeeRequest	true	"employee"
//	@Success		201		{object}	mutualsdk.Employee
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		403		{object}	mutualsdk.ErrorResponse
//	@Failure		404		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs/{id}/employees [post].
func (h *JobsHandler) HandleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req mutualsdk.CreateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	emp, err := h.EmployeeService.Create(r.Context(), userID, id, service.EmployeeInput{
		Name:        req.Name,
		Title:       req.Title,
		LinkedInURL: req.LinkedInURL,
		Department:  req.Department,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEmployee(emp))
}

// HandleGetEmployee handles GET /api/employees/{id}
//
//	@Summary		Get an employee
//	@Tags			Employees
//	@Produce		json
//	@Param			id	path		int	true	"employee id"
//	@Success		200	{object}	mutualsdk.Employee
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/employees/{id} [get].
func (h *JobsHandler) HandleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	emp, err := h.EmployeeService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEmployee(emp))
}

// HandleImport handles POST /api/jobs/import
//
//	@Summary		Import jobs from LinkedIn
//	@Description	Searches with the saved job preferences and adds listings not already tracked.
//	@Tags			Discovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.ImportJobsRequest	false	"optional limit"
//	@Success		201		{array}		mutualsdk.Job
//	@Failure		400		{object}	mutualsdk.ErrorResponse	"LinkedIn not connected"
//	@Security		SessionCookie
//	@Router			/api/jobs/import [post].
func (h *JobsHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.ImportJobsRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}
	if req.Limit < 0 {
		writeError(w, http.StatusBadRequest, mutualsdk.ErrorCodeValidation, "Validation failed",
			map[string]string{"limit": "must be a positive integer"})
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	jobs, err := h.DiscoveryService.ImportJobs(r.Context(), userID, req.Limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, mapSlice(jobs, toJob))
}

// HandleDiscover handles POST /api/jobs/{id}/discover
//
//	@Summary		Discover employees and mutual connections
//	@Description	Finds people at the job's company and the caller's mutual connections to them.
//	@Description	Rows written before a failure are kept; the error details say how many.
//	@Tags			Discovery
//	@Produce		json
//	@Param			id	path		int	true	"job id"
//	@Success		201	{object}	mutualsdk.DiscoveryResult
//	@Failure		400	{object}	mutualsdk.ErrorResponse	"LinkedIn not connected"
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/jobs/{id}/discover [post].
func (h *JobsHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	res, err := h.DiscoveryService.Discover(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, mutualsdk.DiscoveryResult{
		Employees: mapSlice(res.Employees, toEmployee),
		Mutuals:   mapSlice(res.Mutuals, toMutual),
	})
}
