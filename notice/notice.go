// Package notice carries one-shot user messages across a redirect.
// A notice survives exactly one page render: Pop clears the cookie as it
// reads it. POST handlers that re-render their own form pass the message
// inline instead and never touch this package.
package notice

import (
	"net/http"
	"net/url"
	"strings"
)

const cookieName = "atm_notice"

// Categories understood by the page templates.
const (
	Success = "success"
	Error   = "error"
)

// Notice is a transient message shown to the user once.
type Notice struct {
	Category string
	Message  string
}

// Set queues a notice for the next rendered page.
func Set(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Notice {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	if category != Success && category != Error {
		category = Error
	}
	return &Notice{Category: category, Message: message}
}
