package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

type PreferencesHandler struct {
	PreferenceService *service.PreferenceService
}

// HandleGet handles GET /api/job-preferences
//
//	@Summary		Get job preferences
//	@Tags			Preferences
//	@Produce		json
//	@Success		200	{object}	mutualsdk.JobPreferences
//	@Failure		404	{object}	mutualsdk.ErrorResponse	"never saved"
//	@Security		SessionCookie
//	@Router			/api/job-preferences [get].
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	p, err := h.PreferenceService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreferences(p))
}

// HandleSave handles POST /api/job-preferences
//
//	@Summary		Save job preferences
//	@Description	Replaces the preferences wholesale.
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.SavePreferencesRequest	true	"preferences"
//	@Success		200		{object}	mutualsdk.JobPreferences	"replaced"
//	@Success		201		{object}	mutualsdk.JobPreferences	"created"
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/job-preferences [post].
func (h *PreferencesHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.SavePreferencesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	p, created, err := h.PreferenceService.Save(r.Context(), userID, req.JobTitles, req.Locations, req.Industries)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, toPreferences(p))
}
