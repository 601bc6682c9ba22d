package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/service"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
)

type LoginHandler struct {
	Sessions *service.SessionService
	Cookies  CookieConfig
	Renderer *Renderer
}

// HandleGet shows the login form. A judge who is already logged in goes
// straight to the dashboard.
func (h *LoginHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if _, err := h.Sessions.CurrentIdentity(r.Context(), token); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	h.Renderer.Render(w, r, http.StatusOK, pageLogin, pageData{Title: "Login"})
}

// HandlePost checks the submitted credentials. Success sets the session
// cookie and redirects to the dashboard; failure re-renders the form.
func (h *LoginHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Renderer.Render(w, r, http.StatusBadRequest, pageLogin, pageData{
			Title: "Login",
			Error: "Invalid form submission",
		})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	res, err := h.Sessions.Authenticate(r.Context(), username, password, domain.SessionMeta{
		UserAgent: r.UserAgent(),
		IPAddress: httpx.IPKeyExtractor(r),
	})
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.Renderer.Render(w, r, http.StatusUnauthorized, pageLogin, pageData{
			Title:    "Login",
			Error:    "Invalid credentials",
			Username: username,
		})
		return
	}
	if err != nil {
		h.Renderer.ServerError(w, r, err)
		return
	}

	// Replace any session the browser already had.
	if old := sessionToken(r); old != "" {
		_ = h.Sessions.EndSession(r.Context(), old)
	}

	h.Cookies.set(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout ends the session and returns to the login page.
func (h *LoginHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.EndSession(r.Context(), sessionToken(r)); err != nil {
		h.Renderer.ServerError(w, r, err)
		return
	}

	h.Cookies.clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
