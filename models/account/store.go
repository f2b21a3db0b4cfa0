package account

import (
	"strings"
	"sync"
)

// Store is the in-memory account table, keyed by lowercased username.
// It is handed to the controllers explicitly so tests can build their own.
// Accounts live for the whole process; a restart resets them to the seed.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewStore builds a store holding the given accounts.
func NewStore(accounts ...*Account) *Store {
	s := &Store{accounts: make(map[string]*Account, len(accounts))}
	for _, a := range accounts {
		a.Username = Normalize(a.Username)
		s.accounts[a.Username] = a
	}
	return s
}

// Seed returns a store preloaded with the fixed demo accounts.
func Seed() *Store {
	return NewStore(
		&Account{Username: "user1", PIN: "1234", Balance: 1000},
		&Account{Username: "user2", PIN: "2222", Balance: 2000},
		&Account{Username: "user3", PIN: "3333", Balance: 3000},
	)
}

// Find looks up an account. Usernames are trimmed and compared
// case-insensitively.
func (s *Store) Find(username string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[Normalize(username)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Normalize returns the canonical form of a username: trimmed and
// lowercased. The store is keyed by this form.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
