package reminder

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Two engine instances sharing one store (two processes against the same
// database) would each fire independently and duplicate alerts. The leader
// token scopes firing to a single instance: a redis key held with a TTL,
// re-extended on every tick by the holder. Without redis the lock degrades
// to always-leader, which restores the documented duplicate-alert behavior
// of uncoordinated instances.

const (
	leaderKey = "reminder:leader"
	leaderTTL = 15 * time.Second
)

// Leader is a best-effort single-instance lock.
type Leader struct {
	rdb        *redis.Client
	instanceID string
}

// NewLeader creates a leader lock for this instance. rdb may be nil, in
// which case Acquire always succeeds.
func NewLeader(rdb *redis.Client, instanceID string) *Leader {
	return &Leader{rdb: rdb, instanceID: instanceID}
}

// Acquire tries to take or extend the leader token. It returns true when
// this instance holds the token (or no redis is configured) and firing may
// proceed. Redis errors are treated as "not leader" so a flapping redis
// never double-fires from the non-holder side.
func (l *Leader) Acquire(now time.Time) bool {
	if l.rdb == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ok, err := l.rdb.SetNX(ctx, leaderKey, l.instanceID, leaderTTL).Result()
	if err != nil {
		return false
	}
	if ok {
		return true
	}

	holder, err := l.rdb.Get(ctx, leaderKey).Result()
	if err != nil || holder != l.instanceID {
		return false
	}
	// Heartbeat: extend our own token.
	_ = l.rdb.Expire(ctx, leaderKey, leaderTTL).Err()
	return true
}

// Release drops the token if this instance holds it, letting another
// instance take over immediately on shutdown.
func (l *Leader) Release() {
	if l.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	script := `
		if redis.call('GET', KEYS[1]) == ARGV[1] then
			return redis.call('DEL', KEYS[1])
		end
		return 0
	`
	_ = l.rdb.Eval(ctx, script, []string{leaderKey}, l.instanceID).Err()
}
