package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleGet handles GET /api/auth/me and GET /api/user
//
//	@Summary		Current user
//	@Tags			User
//	@Produce		json
//	@Success		200	{object}	mutualsdk.User
//	@Failure		401	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/user [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleUpdate handles PATCH /api/user
//
//	@Summary		Update profile
//	@Description	Shallow merge of name, jobTitle, photoUrl and linkedInUrl.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.UpdateUserRequest	true	"fields to change"
//	@Success		200		{object}	mutualsdk.User
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		401		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/user [patch].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	user, err := h.UserService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Name:        req.Name,
		JobTitle:    req.JobTitle,
		PhotoURL:    req.PhotoURL,
		LinkedInURL: req.LinkedInURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleConnectLinkedIn handles POST /api/linkedin/connect
//
//	@Summary		Link a LinkedIn account
//	@Tags			LinkedIn
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.ConnectLinkedInRequest	true	"session cookie from the LinkedIn login"
//	@Success		200		{object}	mutualsdk.User
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/linkedin/connect [post].
func (h *UserHandler) HandleConnectLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.ConnectLinkedInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	user, err := h.UserService.ConnectLinkedIn(r.Context(), userID, req.SessionCookie)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleDisconnectLinkedIn handles DELETE /api/linkedin/disconnect
//
//	@Summary		Unlink the LinkedIn account
//	@Tags			LinkedIn
//	@Produce		json
//	@Success		200	{object}	mutualsdk.User
//	@Security		SessionCookie
//	@Router			/api/linkedin/disconnect [delete].
func (h *UserHandler) HandleDisconnectLinkedIn(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	user, err := h.UserService.DisconnectLinkedIn(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
