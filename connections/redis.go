package connections

import (
	"os"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
)

var (
	redisPool *redis.Pool
	redisOnce sync.Once
)

// Redis returns a connection from the Redis pool. Callers must Close it.
func Redis() redis.Conn {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}

		redisPool = &redis.Pool{
			MaxIdle:     5,
			IdleTimeout: 240 * time.Second,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", addr)
			},
			TestOnBorrow: func(c redis.Conn, t time.Time) error {
				if time.Since(t) < time.Minute {
					return nil
				}
				_, err := c.Do("PING")
				return err
			},
		}
	})
	return redisPool.Get()
}

// CloseRedis closes the Redis connection pool
func CloseRedis() {
	if redisPool != nil {
		redisPool.Close()
	}
}
