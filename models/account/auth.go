package account

import (
	"errors"
	"strings"
)

// Authenticate checks username and PIN against the store.
//
// Checks run in a fixed order and the first failure wins: empty input,
// unknown user, locked account, malformed PIN, wrong PIN. A wrong PIN
// increments the account's failure count; the third consecutive failure
// locks the account permanently and returns ErrAccountNowLocked. A locked
// account rejects every further login, correct PIN included. Success
// resets the failure count and returns the account; establishing a
// session is up to the caller.
func (s *Store) Authenticate(username, pin string) (*Account, error) {
	username = strings.TrimSpace(username)
	pin = strings.TrimSpace(pin)
	if username == "" || pin == "" {
		return nil, ErrEmptyInput
	}

	a, err := s.Find(username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Locked {
		return nil, ErrAccountLocked
	}
	if !validPIN(pin) {
		return nil, ErrPINMalformed
	}
	if pin != a.PIN {
		a.FailedAttempts++
		if a.FailedAttempts >= MaxPINAttempts {
			a.Locked = true
			return nil, ErrAccountNowLocked
		}
		return nil, WrongPINError{Remaining: MaxPINAttempts - a.FailedAttempts}
	}

	a.FailedAttempts = 0
	return a, nil
}
