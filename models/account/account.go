package account

import (
	"regexp"
	"sync"
)

// MaxPINAttempts is the number of consecutive wrong PINs before an
// account is locked for good.
const MaxPINAttempts = 3

// CashMultiple is the note denomination the machine dispenses and accepts.
const CashMultiple = 10

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Account represents a card holder known to the machine.
// Balance is kept in whole euro. The mutex serializes every operation
// that reads or writes the mutable fields, so two concurrent withdrawals
// cannot both pass the balance check.
type Account struct {
	mu sync.Mutex

	Username       string
	PIN            string
	Balance        int
	Locked         bool
	FailedAttempts int
}

// validPIN reports whether s is exactly 4 decimal digits.
func validPIN(s string) bool {
	return pinPattern.MatchString(s)
}

// CurrentBalance returns the balance at this instant.
func (a *Account) CurrentBalance() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Balance
}

// IsLocked reports whether the account has been locked.
func (a *Account) IsLocked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Locked
}
