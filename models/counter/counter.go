package counter

import (
	log "github.com/sirupsen/logrus"

	"github.com/cashpoint/cashpoint/connections"
	"github.com/gomodule/redigo/redis"
)

// Counter names tracked in Redis.
const (
	Logins       = "logins"
	FailedLogins = "failed_logins"
	Lockouts     = "lockouts"
	Withdrawals  = "withdrawals"
	Deposits     = "deposits"
	PINChanges   = "pin_changes"
)

// Names lists every counter, in display order.
var Names = []string{Logins, FailedLogins, Lockouts, Withdrawals, Deposits, PINChanges}

const prefix = "counter:"

// Incr increments a usage counter. Failures are logged, not propagated;
// losing a count never fails the user's request.
func Incr(name string) {
	conn := connections.Redis()
	defer conn.Close()
	if _, err := conn.Do("INCR", prefix+name); err != nil {
		log.WithField("counter", name).WithError(err).Error("Increment Counter Failed")
	}
}

// Get returns the current value of one counter.
func Get(name string) (int, error) {
	conn := connections.Redis()
	defer conn.Close()
	n, err := redis.Int(conn.Do("GET", prefix+name))
	if err == redis.ErrNil {
		return 0, nil
	}
	return n, err
}

// All returns every counter keyed by name.
func All() (map[string]int, error) {
	counts := make(map[string]int, len(Names))
	for _, name := range Names {
		n, err := Get(name)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
