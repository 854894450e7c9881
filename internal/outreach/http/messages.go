package http

import (
	"net/http"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
)

type MessagesHandler struct {
	MessageService *service.MessageService
}

// HandleList handles GET /api/messages
//
//	@Summary		List outreach messages
//	@Description	Newest first. Deleted messages only show up when asked for with status=Deleted.
//	@Tags			Messages
//	@Produce		json
//	@Param			mutualId	query		int		false	"only messages to this mutual"
//	@Param			jobId		query		int		false	"only messages about this job"
//	@Param			status		query		string	false	"Draft, Sent, ResponseReceived or Deleted"
//	@Param			limit		query		int		false	"maximum number of messages"
//	@Success		200			{array}		mutualsdk.Message
//	@Failure		400			{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/messages [get].
func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParams(w, r, "mutualId", "jobId", "limit")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	msgs, err := h.MessageService.List(r.Context(), userID, service.MessageQuery{
		MutualID: q["mutualId"],
		JobID:    q["jobId"],
		Status:   r.URL.Query().Get("status"),
		Limit:    int(q["limit"]),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(msgs, toMessage))
}

// HandleCreate handles POST /api/messages
//
//	@Summary		Create an outreach message
//	@Description	Status defaults to Draft and outcome to Pending. A blank messageText is filled
//	@Description	from the template for the mutual's strength. A strength that differs from the
//	@Description	stored rating re-rates the mutual first.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.CreateMessageRequest	true	"message"
//	@Success		201		{object}	mutualsdk.Message
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		403		{object}	mutualsdk.ErrorResponse	"mutual, employee or job not owned"
//	@Security		SessionCookie
//	@Router			/api/messages [post].
func (h *MessagesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.CreateMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MessageService.Create(r.Context(), userID, service.CreateMessageInput{
		MutualID:    req.MutualID,
		EmployeeID:  req.EmployeeID,
		JobID:       req.JobID,
		MessageText: req.MessageText,
		Status:      req.Status,
		Outcome:     req.Outcome,
		Strength:    req.Strength,
		CalendarURL: req.CalendarURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMessage(m))
}

// HandleGet handles GET /api/messages/{id}
//
//	@Summary		Get an outreach message
//	@Tags			Messages
//	@Produce		json
//	@Param			id	path		int	true	"message id"
//	@Success		200	{object}	mutualsdk.Message
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/messages/{id} [get].
func (h *MessagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MessageService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMessage(m))
}

// HandleUpdate handles PATCH /api/messages/{id}
//
//	@Summary		Update an outreach message
//	@Description	Moves status forward (Draft, Sent, ResponseReceived), records an outcome or edits the text.
//	@Description	Backward moves are rejected. Repeating a patch is harmless.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"message id"
//	@Param			request	body		mutualsdk.UpdateMessageRequest	true	"fields to change"
//	@Success		200		{object}	mutualsdk.Message
//	@Failure		400		{object}	mutualsdk.ErrorResponse
//	@Failure		403		{object}	mutualsdk.ErrorResponse
//	@Failure		404		{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/messages/{id} [patch].
func (h *MessagesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req mutualsdk.UpdateMessageRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MessageService.Update(r.Context(), userID, id, service.MessagePatch{
		MessageText: req.MessageText,
		Status:      req.Status,
		Outcome:     req.Outcome,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMessage(m))
}

// HandleDelete handles DELETE /api/messages/{id}
//
//	@Summary		Delete an outreach message
//	@Description	Soft delete: the message is kept with status Deleted.
//	@Tags			Messages
//	@Produce		json
//	@Param			id	path		int	true	"message id"
//	@Success		200	{object}	mutualsdk.Message
//	@Failure		403	{object}	mutualsdk.ErrorResponse
//	@Failure		404	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/messages/{id} [delete].
func (h *MessagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	userID, _ := httpx.UserIDFromContext(r.Context())
	m, err := h.MessageService.Delete(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMessage(m))
}
