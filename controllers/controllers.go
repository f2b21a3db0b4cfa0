// Package controllers holds the HTTP handlers for the ATM pages. The
// account store is injected so tests can run against their own seed.
package controllers

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/cashpoint/cashpoint/models/account"
	"github.com/cashpoint/cashpoint/notice"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ATM bundles the handlers with their account store.
type ATM struct {
	Accounts *account.Store
}

// New returns the handler set backed by store.
func New(store *account.Store) *ATM {
	return &ATM{Accounts: store}
}

// viewData is what every page template receives.
type viewData struct {
	Title    string
	Username string
	Balance  int
	Notice   *notice.Notice
}

func render(w http.ResponseWriter, name string, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.WithField("template", name).WithError(err).Error("Render Template Failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// messageFor maps a domain error to the text shown to the user.
func messageFor(err error) string {
	var wrongPIN account.WrongPINError
	if errors.As(err, &wrongPIN) {
		return fmt.Sprintf("Invalid PIN. %d attempt(s) remaining.", wrongPIN.Remaining)
	}

	switch {
	case errors.Is(err, account.ErrEmptyInput):
		return "Please enter both username and PIN."
	case errors.Is(err, account.ErrUnknownUser):
		return "Invalid username."
	case errors.Is(err, account.ErrAccountLocked):
		return "This account has been locked due to too many failed attempts."
	case errors.Is(err, account.ErrPINMalformed):
		return "PIN must consist of 4 digits."
	case errors.Is(err, account.ErrAccountNowLocked):
		return "3 unsuccessful PIN attempts. Your card has been locked!"
	case errors.Is(err, account.ErrInvalidAmount):
		return "Please enter a valid amount."
	case errors.Is(err, account.ErrNonPositiveAmount):
		return "Please enter a positive amount."
	case errors.Is(err, account.ErrNotMultipleOfTen):
		return "Amount must be in multiples of 10 Euro."
	case errors.Is(err, account.ErrInsufficientBalance):
		return "Insufficient balance."
	case errors.Is(err, account.ErrWrongCurrentPIN):
		return "Current PIN is incorrect."
	case errors.Is(err, account.ErrNewPINMalformed):
		return "New PIN must consist of 4 digits."
	case errors.Is(err, account.ErrPINUnchanged):
		return "New PIN must be different from current PIN."
	case errors.Is(err, account.ErrPINMismatch):
		return "New PIN and confirmation do not match."
	}
	return "Something went wrong. Please try again."
}

// capitalize upper-cases the first letter for the welcome message.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
