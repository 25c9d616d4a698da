// File: internal/auth/flash.go
package auth

import (
	"net/http"
	"net/url"
)

const flashCookieName = "__flash"

// setFlash stores a one-shot message for the login page. The value is
// URL-escaped so arbitrary sentence text survives the cookie grammar.
func setFlash(w http.ResponseWriter, secure bool, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlash returns the pending flash message, clearing it so it renders at
// most once. Missing or garbled cookies read as empty.
func readFlash(w http.ResponseWriter, r *http.Request, secure bool) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
