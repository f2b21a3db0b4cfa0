package controllers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/julienschmidt/httprouter"

	"github.com/cashpoint/cashpoint/auth"
	"github.com/cashpoint/cashpoint/channels/telegram"
	"github.com/cashpoint/cashpoint/models/account"
	"github.com/cashpoint/cashpoint/models/counter"
	"github.com/cashpoint/cashpoint/notice"
)

// Index sends the visitor to the dashboard or the login page, depending
// on whether a session is active.
func (atm *ATM) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := auth.CurrentUser(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage renders the login form.
func (atm *ATM) LoginPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	render(w, "login.html", viewData{Title: "Log in", Notice: notice.Pop(w, r)})
}

// Login processes credentials. Failures re-render the form with the
// reason; success starts a session and redirects to the dashboard.
func (atm *ATM) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := r.FormValue("username")
	pin := r.FormValue("pin")

	a, err := atm.Accounts.Authenticate(username, pin)
	if err != nil {
		counter.Incr(counter.FailedLogins)
		if errors.Is(err, account.ErrAccountNowLocked) {
			locked := account.Normalize(username)
			counter.Incr(counter.Lockouts)
			log.WithField("username", locked).Warn("Account Locked")
			go telegram.NotifyLockout(locked)
		}
		render(w, "login.html", viewData{
			Title:  "Log in",
			Notice: &notice.Notice{Category: notice.Error, Message: messageFor(err)},
		})
		return
	}

	if err := auth.CreateSession(w, a.Username); err != nil {
		log.WithField("username", a.Username).WithError(err).Error("Create Session Failed")
		render(w, "login.html", viewData{
			Title:  "Log in",
			Notice: &notice.Notice{Category: notice.Error, Message: "Something went wrong. Please try again."},
		})
		return
	}

	counter.Incr(counter.Logins)
	log.WithField("username", a.Username).Info("Login")
	notice.Set(w, notice.Success, "Welcome, "+capitalize(a.Username)+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session.
func (atm *ATM) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	auth.DestroySession(w, r)
	notice.Set(w, notice.Success, "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
