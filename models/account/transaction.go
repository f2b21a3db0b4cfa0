package account

import (
	"math"
	"strconv"
	"strings"
)

// parseAmount turns the raw form input into an amount, enforcing the
// machine's cash rules: strict integer, positive, multiple of 10.
func parseAmount(input string) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}
	if amount%CashMultiple != 0 {
		return 0, ErrNotMultipleOfTen
	}
	return amount, nil
}

// Withdraw debits the account and returns the new balance.
// The balance check and the debit happen under the account mutex.
func (a *Account) Withdraw(input string) (int, error) {
	amount, err := parseAmount(input)
	if err != nil {
		return 0, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.Balance {
		return 0, ErrInsufficientBalance
	}
	a.Balance -= amount
	return a.Balance, nil
}

// Deposit credits the account and returns the new balance. Same amount
// rules as Withdraw; there is no upper bound.
func (a *Account) Deposit(input string) (int, error) {
	amount, err := parseAmount(input)
	if err != nil {
		return 0, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	// the sum must not wrap; a wrapped balance would go negative
	if amount > math.MaxInt-a.Balance {
		return 0, ErrInvalidAmount
	}
	a.Balance += amount
	return a.Balance, nil
}

// ChangePIN replaces the account PIN. Checks run in order: current PIN
// must match, the new PIN must be 4 digits, must differ from the current
// one, and must match its confirmation.
func (a *Account) ChangePIN(currentPIN, newPIN, confirmPIN string) error {
	currentPIN = strings.TrimSpace(currentPIN)
	newPIN = strings.TrimSpace(newPIN)
	confirmPIN = strings.TrimSpace(confirmPIN)

	a.mu.Lock()
	defer a.mu.Unlock()

	if currentPIN != a.PIN {
		return ErrWrongCurrentPIN
	}
	if !validPIN(newPIN) {
		return ErrNewPINMalformed
	}
	if newPIN == a.PIN {
		return ErrPINUnchanged
	}
	if newPIN != confirmPIN {
		return ErrPINMismatch
	}

	a.PIN = newPIN
	return nil
}
