package jobs

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cashpoint/cashpoint/connections"
	"github.com/cashpoint/cashpoint/models/counter"
)

// CounterRollup snapshots the live usage counters into a per-day hash,
// so counters can be reset or expired without losing history.
type CounterRollup struct{}

// NewCounterRollup creates a new CounterRollup
func NewCounterRollup() *CounterRollup {
	return &CounterRollup{}
}

// Run executes the rollup job
func (cr CounterRollup) Run() {
	counts, err := counter.All()
	if err != nil {
		log.WithError(err).Error("Counter Rollup: Read Counters Failed")
		return
	}

	key := "counter:daily:" + time.Now().Format("2006-01-02")

	conn := connections.Redis()
	defer conn.Close()
	for name, n := range counts {
		if _, err := conn.Do("HSET", key, name, n); err != nil {
			log.WithField("counter", name).WithError(err).Error("Counter Rollup: Write Failed")
			return
		}
	}

	log.WithField("key", key).Info("Counter Rollup Finished")
}
