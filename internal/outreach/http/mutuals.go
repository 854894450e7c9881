package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

type MutualsHandler struct {
	MutualService *service.MutualService
}

// HandleList handles GET /api/mutuals
//
//	@Summary		List mutual connections
//	@Description	Strongest first. Also served at /api/mutual-connections.
//	@Tags			Mutuals
//	@Produce		json
//	@Param			employeeId	query		int	false	"only mutuals of this employee"
//	@Param			jobId		query		int	false	"only mutuals of this job's employees"
//	@Param			limit		query		int	false	"maximum number of mutuals"
//	@Success		200			{array}		mutualsdk.Mutual
//	@Failure		400			{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/mutuals [get].
func (h *MutualsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParams(w, r, "employeeId", "jobId", "limit")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	mutuals, err := h.MutualService.List(r.Context(), userID, service.MutualQuery{
		EmployeeID: q["employeeId"],
		JobID:      q["jobId"],
		Limit:      int(q["limit"]),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(mutuals, toMutual))
}

// HandleCreate handles POST /api/mutuals
//
//	@Summary		Add a mutual connection
//	@Tags			Mutuals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.CreateMutualRequest	true	"mutual"
//	@Success		201		{object}	mutualsdk.Mutual
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		403		{object}	mutualsdk.ErrorResponse	"employee not owned"
//	@Security		SessionCookie
//	@Router			/api/mutuals [post].
func (h *MutualsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.CreateMutualRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MutualService.Create(r.Context(), userID, service.MutualInput{
		EmployeeID:        req.EmployeeID,
		Name:              req.Name,
		Title:             req.Title,
		Company:           req.Company,
		LinkedInURL:       req.LinkedInURL,
		ConnectedSince:    req.ConnectedSince,
		RatedStrength:     req.RatedStrength,
		ConnectionContext: req.ConnectionContext,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMutual(m))
}

// HandleGet handles GET /api/mutuals/{id}
//
//	@Summary		Get a mutual connection
//	@Tags			Mutuals
//	@Produce		json
//	@Param			id	path		int	true	"mutual id"
//	@Success		200	{object}	mutualsdk.Mutual
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/mutuals/{id} [get].
func (h *MutualsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MutualService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMutual(m))
}

// HandleUpdate handles PATCH /api/mutuals/{id}
//
//	@Summary		Update a mutual connection
//	@Description	Shallow merge; an empty body changes nothing and returns the row.
//	@Tags			Mutuals
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"mutual id"
//	@Param			request	body		mutualsdk.UpdateMutualRequest	true	"fields to change"
//	@Success		200		{object}	mutualsdk.Mutual
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		403		{object}	mutualsdk.ErrorResponse
//	@Failure		404		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/mutuals/{id} [patch].
func (h *MutualsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req mutualsdk.UpdateMutualRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MutualService.Update(r.Context(), userID, id, store.MutualPatch{
		Name:              req.Name,
		Title:             req.Title,
		Company:           req.Company,
		LinkedInURL:       req.LinkedInURL,
		ConnectedSince:    req.ConnectedSince,
		RatedStrength:     req.RatedStrength,
		ConnectionContext: req.ConnectionContext,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMutual(m))
}

// HandleTemplate handles GET /api/mutuals/{id}/template
//
//	@Summary		Preview the introduction request
//	@Description	Renders the template picked by the mutual's strength rating.
//	@Tags			Mutuals
//	@Produce		json
//	@Param			id			path		int		true	"mutual id"
//	@Param			calendarUrl	query		string	false	"scheduling link to include"
//	@Success		200			{object}	mutualsdk.TemplatePreview
//	@Failure		403			{object}	mutualsdk.ErrorResponse
//	@Failure		404			{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/mutuals/{id}/template [get].
func (h *MutualsHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	p, err := h.MutualService.Preview(r.Context(), userID, id, r.URL.Query().Get("calendarUrl"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreview(p))
}
