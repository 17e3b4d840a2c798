// Package redis opens the go-redis client used by the Redis cooldown store.
//
// Open validates the URL, applies pool and timeout settings, and pings the
// server with a bounded number of retries so a process fails fast at startup
// when Redis is unreachable:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithPoolSize(4),
//		redis.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := cooldown.NewRedisStore(client)
//
// Ping is a readiness check for an already open client. Both functions
// return errors that wrap the package sentinels, so callers can use
// errors.Is.
package redis
