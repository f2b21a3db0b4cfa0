package account

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound = errors.New("account not found")

	// login
	ErrEmptyInput       = errors.New("username or PIN is empty")
	ErrUnknownUser      = errors.New("unknown username")
	ErrAccountLocked    = errors.New("account is locked")
	ErrPINMalformed     = errors.New("PIN must be 4 digits")
	ErrAccountNowLocked = errors.New("account locked after too many failed attempts")

	// withdraw / deposit
	ErrInvalidAmount       = errors.New("amount is not a valid integer")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrNotMultipleOfTen    = errors.New("amount must be a multiple of 10")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// change PIN
	ErrWrongCurrentPIN = errors.New("current PIN is incorrect")
	ErrNewPINMalformed = errors.New("new PIN must be 4 digits")
	ErrPINUnchanged    = errors.New("new PIN equals current PIN")
	ErrPINMismatch     = errors.New("new PIN and confirmation differ")
)

// WrongPINError reports a wrong PIN that did not yet lock the account.
type WrongPINError struct {
	Remaining int
}

func (e WrongPINError) Error() string {
	return fmt.Sprintf("wrong PIN, %d attempt(s) remaining", e.Remaining)
}
