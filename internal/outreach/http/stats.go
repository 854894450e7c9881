package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleStats handles GET /api/stats and GET /api/dashboard/stats
//
//	@Summary		Dashboard counters
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	mutualsdk.Stats
//	@Failure		401	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/stats [get].
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	s, err := h.StatsService.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStats(s))
}

// HandleActivity handles GET /api/stats/activity
//
//	@Summary		Outreach activity per day
//	@Tags			Stats
//	@Produce		json
//	@Param			days	query		int	false	"7, 30 or 90 (default 7)"
//	@Success		200		{array}		mutualsdk.ActivityDay
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/stats/activity [get].
func (h *StatsHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParams(w, r, "days")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	days, err := h.StatsService.Activity(r.Context(), userID, int(q["days"]))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(days, toActivity))
}
