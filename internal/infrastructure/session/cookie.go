package session

import (
	"net/http"
	"time"
)

// CookieOptions defines how session cookies are issued
type CookieOptions struct {
	Name     string
	Lifetime time.Duration
	Secure   bool
}

// SetCookie issues the session cookie to the client
func SetCookie(w http.ResponseWriter, sessionID string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(opts.Lifetime.Seconds()),
	})
}

// ClearCookie removes the session cookie from the client
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
