package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

type ToolsHandler struct {
	ToolsService *service.ToolsService
}

// HandleResume handles POST /api/tools/resume
//
//	@Summary		Generate a resume
//	@Tags			Tools
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.ToolRequest	true	"job description"
//	@Success		200		{object}	mutualsdk.ToolResponse
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		503		{object}	mutualsdk.ErrorResponse	"generation not configured"
//	@Security		SessionCookie
//	@Router			/api/tools/resume [post].
func (h *ToolsHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.withJobDescription(w, r, h.ToolsService.Resume)
}

// HandleCoverLetter handles POST /api/tools/cover-letter
//
//	@Summary		Generate a cover letter
//	@Tags			Tools
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.ToolRequest	true	"job description"
//	@Success		200		{object}	mutualsdk.ToolResponse
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		503		{object}	mutualsdk.ErrorResponse	"generation not configured"
//	@Security		SessionCookie
//	@Router			/api/tools/cover-letter [post].
func (h *ToolsHandler) HandleCoverLetter(w http.ResponseWriter, r *http.Request) {
	h.withJobDescription(w, r, h.ToolsService.CoverLetter)
}

// HandleLinkedInProfile handles POST /api/tools/linkedin-profile
//
//	@Summary		Suggest LinkedIn profile improvements
//	@Tags			Tools
//	@Produce		json
//	@Success		200	{object}	mutualsdk.ToolResponse
//	@Failure		503	{object}	mutualsdk.ErrorResponse	"generation not configured"
//	@Security		SessionCookie
//	@Router			/api/tools/linkedin-profile [post].
func (h *ToolsHandler) HandleLinkedInProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	content, err := h.ToolsService.LinkedInProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mutualsdk.ToolResponse{Content: content})
}

func (h *ToolsHandler) withJobDescription(w http.ResponseWriter, r *http.Request, run func(context.Context, int64, string) (string, error)) {
	var req mutualsdk.ToolRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	content, err := run(r.Context(), userID, req.JobDescription)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mutualsdk.ToolResponse{Content: content})
}
