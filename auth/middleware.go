package auth

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/cashpoint/cashpoint/notice"
)

type contextKey string

const userContextKey contextKey = "username"

// RequireLogin guards a handler behind an active session. Without one
// the user is bounced to the login page with a notice.
func RequireLogin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		username, err := CurrentUser(r)
		if err != nil {
			notice.Set(w, notice.Error, "Please log in first.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, username)
		next(w, r.WithContext(ctx), ps)
	}
}

// UsernameFromContext returns the session's username, or "" outside
// RequireLogin.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(userContextKey).(string)
	return username
}
