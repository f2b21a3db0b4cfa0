package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/julienschmidt/httprouter"

	"github.com/cashpoint/cashpoint/auth"
	"github.com/cashpoint/cashpoint/models/account"
	"github.com/cashpoint/cashpoint/models/counter"
	"github.com/cashpoint/cashpoint/notice"
)

// currentAccount resolves the session user to their account. A session
// naming an account the store no longer knows is treated as dead.
func (atm *ATM) currentAccount(w http.ResponseWriter, r *http.Request) (*account.Account, bool) {
	username := auth.UsernameFromContext(r.Context())
	a, err := atm.Accounts.Find(username)
	if err != nil {
		auth.DestroySession(w, r)
		notice.Set(w, notice.Error, "Please log in first.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	}
	return a, true
}

// Dashboard shows the user's balance.
func (atm *ATM) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}
	render(w, "dashboard.html", viewData{
		Title:    "Dashboard",
		Username: a.Username,
		Balance:  a.CurrentBalance(),
		Notice:   notice.Pop(w, r),
	})
}

// Statement shows the account statement.
func (atm *ATM) Statement(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}
	render(w, "statement.html", viewData{
		Title:    "Statement",
		Username: a.Username,
		Balance:  a.CurrentBalance(),
		Notice:   notice.Pop(w, r),
	})
}

// WithdrawPage renders the withdrawal form.
func (atm *ATM) WithdrawPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}
	render(w, "withdraw.html", viewData{
		Title:    "Withdraw",
		Username: a.Username,
		Balance:  a.CurrentBalance(),
		Notice:   notice.Pop(w, r),
	})
}

// Withdraw debits the account. A rejected amount re-renders the form
// with the reason; success redirects to the dashboard with a notice.
func (atm *ATM) Withdraw(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}

	input := r.FormValue("amount")
	balance, err := a.Withdraw(input)
	if err != nil {
		render(w, "withdraw.html", viewData{
			Title:    "Withdraw",
			Username: a.Username,
			Balance:  a.CurrentBalance(),
			Notice:   &notice.Notice{Category: notice.Error, Message: messageFor(err)},
		})
		return
	}

	amount, _ := strconv.Atoi(strings.TrimSpace(input))
	counter.Incr(counter.Withdrawals)
	log.WithFields(log.Fields{
		"username": a.Username,
		"amount":   amount,
		"balance":  balance,
	}).Info("Withdraw")
	notice.Set(w, notice.Success, fmt.Sprintf("Successfully withdrew %d Euro. New balance: %d Euro.", amount, balance))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// DepositPage renders the deposit form.
func (atm *ATM) DepositPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}
	render(w, "deposit.html", viewData{
		Title:    "Deposit",
		Username: a.Username,
		Balance:  a.CurrentBalance(),
		Notice:   notice.Pop(w, r),
	})
}

// Deposit credits the account, same shape as Withdraw.
func (atm *ATM) Deposit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}

	input := r.FormValue("amount")
	balance, err := a.Deposit(input)
	if err != nil {
		render(w, "deposit.html", viewData{
			Title:    "Deposit",
			Username: a.Username,
			Balance:  a.CurrentBalance(),
			Notice:   &notice.Notice{Category: notice.Error, Message: messageFor(err)},
		})
		return
	}

	amount, _ := strconv.Atoi(strings.TrimSpace(input))
	counter.Incr(counter.Deposits)
	log.WithFields(log.Fields{
		"username": a.Username,
		"amount":   amount,
		"balance":  balance,
	}).Info("Deposit")
	notice.Set(w, notice.Success, fmt.Sprintf("Successfully deposited %d Euro. New balance: %d Euro.", amount, balance))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ChangePINPage renders the PIN change form.
func (atm *ATM) ChangePINPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}
	render(w, "change_pin.html", viewData{
		Title:    "Change PIN",
		Username: a.Username,
		Notice:   notice.Pop(w, r),
	})
}

// ChangePIN replaces the account PIN.
func (atm *ATM) ChangePIN(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, ok := atm.currentAccount(w, r)
	if !ok {
		return
	}

	err := a.ChangePIN(
		r.FormValue("current_pin"),
		r.FormValue("new_pin"),
		r.FormValue("confirm_pin"),
	)
	if err != nil {
		render(w, "change_pin.html", viewData{
			Title:    "Change PIN",
			Username: a.Username,
			Notice:   &notice.Notice{Category: notice.Error, Message: messageFor(err)},
		})
		return
	}

	counter.Incr(counter.PINChanges)
	log.WithField("username", a.Username).Info("PIN Changed")
	notice.Set(w, notice.Success, "PIN changed successfully.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
