package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/session"
	"github.com/auranode/auranode/internal/web/middleware"
	"github.com/auranode/auranode/internal/web/templates/pages"
)

// AccountHandler handles registration, login and logout.
type AccountHandler struct {
	accounts *account.Service
	codec    *session.Codec
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *account.Service, codec *session.Codec) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		codec:    codec,
	}
}

// RegisterPage renders the registration form.
func (h *AccountHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	render(w, r, pages.Register(pages.RegisterData{PageData: pageData(r, "Register")}))
}

// Register handles the registration form submission. Registration never
// logs the user in; on success they are sent to the login page.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	input := account.RegistrationInput{
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}

	if err := h.accounts.Register(r.Context(), input); err != nil {
		middleware.SetFlash(w, middleware.FlashError, err.Error())
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Registration successful! You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage renders the login form.
func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	render(w, r, pages.Login(pages.LoginData{PageData: pageData(r, "Login")}))
}

// Login handles the login form submission.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))

	sess, err := h.accounts.Login(r.Context(), email)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, err.Error())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, sess.Token, time.Until(sess.ExpiresAt))
	middleware.SetFlash(w, middleware.FlashSuccess, "You are now logged in.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and clears the cookie. Logging out twice is
// harmless. If destruction fails the user stays on the dashboard rather
// than landing on an ambiguous page with a live session.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if token, err := h.codec.Decode(cookie.Value); err == nil {
			if err := h.accounts.Logout(r.Context(), token); err != nil {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AccountHandler) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    h.codec.Encode(token),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AccountHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
