package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
	CookieSecure   bool
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an account and logs it in. The session is returned as the mutuals_session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.CredentialsRequest	true	"username and password"
//	@Success		201		{object}	mutualsdk.User
//	@Failure		400		{object}	mutualsdk.ErrorResponse	"validation failed"
//	@Failure		409		{object}	mutualsdk.ErrorResponse	"username taken"
//	@Failure		429		{object}	mutualsdk.ErrorResponse
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !h.openSession(w, r, user) {
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(user))
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mutualsdk.CredentialsRequest	true	"username and password"
//	@Success		200		{object}	mutualsdk.User
//	@Failure		401		{object}	mutualsdk.ErrorResponse	"invalid credentials"
//	@Failure		429		{object}	mutualsdk.ErrorResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req mutualsdk.CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !h.openSession(w, r, user) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Revokes the current session and clears the cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	mutualsdk.ErrorResponse
//	@Security		SessionCookie
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := httpx.SessionIDFromContext(r.Context()); ok {
		if err := h.SessionService.Revoke(r.Context(), sid); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mutualsdk.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) openSession(w http.ResponseWriter, r *http.Request, user domain.User) bool {
	token, sess, err := h.SessionService.Open(r.Context(), user)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to open session", "user_id", user.ID, "error", err)
		writeServiceError(w, r, err)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mutualsdk.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
