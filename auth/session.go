package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/cashpoint/cashpoint/connections"
	"github.com/gomodule/redigo/redis"
)

// CookieName is the browser session cookie.
const CookieName = "atm_session"

var ErrNoSession = errors.New("no active session")

func sessionKey(id string) string {
	return "session:" + id
}

// newSessionID returns a random 128-bit hex identifier.
func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CreateSession starts a session for username: a Redis key with the
// session lifetime as TTL, plus a signed cookie naming it. The Redis key
// is the source of truth; deleting it kills the cookie's value.
func CreateSession(w http.ResponseWriter, username string) error {
	sid, err := newSessionID()
	if err != nil {
		return err
	}

	token, err := GenerateToken(username, sid)
	if err != nil {
		return err
	}

	conn := connections.Redis()
	defer conn.Close()
	if _, err := conn.Do("SETEX", sessionKey(sid), int(sessionDuration.Seconds()), username); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// CurrentUser resolves the request's session to a username. The token
// must verify and the server-side session must still exist and agree on
// the username.
func CurrentUser(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrNoSession
	}

	claims, err := ValidateToken(cookie.Value)
	if err != nil {
		return "", ErrNoSession
	}

	conn := connections.Redis()
	defer conn.Close()
	stored, err := redis.String(conn.Do("GET", sessionKey(claims.SessionID)))
	if err == redis.ErrNil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	if stored != claims.Username {
		return "", ErrNoSession
	}

	return claims.Username, nil
}

// DestroySession drops the server-side session and expires the cookie.
func DestroySession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if claims, err := ValidateToken(cookie.Value); err == nil {
			conn := connections.Redis()
			defer conn.Close()
			conn.Do("DEL", sessionKey(claims.SessionID))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
