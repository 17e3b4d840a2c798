// Package cooldown throttles repeated deliveries of the same message to the
// same recipient.
//
// A Key pairs a recipient identity with a message identifier. Recipients
// without a stable identity, such as the console, share ConsoleIdentity and
// therefore one bucket per message.
//
// # Usage
//
//	m, err := cooldown.New(cooldown.WithStore(cooldown.NewMemoryStore()))
//	if err != nil {
//		return err
//	}
//
//	key := cooldown.NewKey(player, "welcome")
//	if m.NotCooling(ctx, key) {
//		deliver()
//		_ = m.PutExpirationTime(ctx, key, 10*time.Second)
//	}
//
// NotCooling only reads and PutExpirationTime only writes; the caller
// decides when a delivery counts as attempted.
//
// # Stores
//
// MemoryStore keeps entries in process. RedisStore shares them between
// processes and relies on Redis key expiry. A store failure while reading is
// logged and treated as "not cooling".
//
// # Sweeping
//
// Expired entries in a MemoryStore are only dropped by RemoveExpired. A
// Sweeper runs it on a cron schedule:
//
//	s, err := cooldown.NewSweeper(m, cooldown.WithSchedule("@every 5m"))
//	if err != nil {
//		return err
//	}
//	s.Start()
//	defer s.Stop(ctx)
package cooldown
