package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type attempt struct {
	lim  *rate.Limiter
	seen time.Time
}

// LoginLimiter throttles login attempts per username so a scripted caller
// cannot brute-force a password through the interactive loop.
type LoginLimiter struct {
	mu    sync.Mutex
	users map[string]*attempt
	r     rate.Limit
	burst int
}

func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	ll := &LoginLimiter{
		users: make(map[string]*attempt),
		r:     rate.Limit(rps),
		burst: burst,
	}
	// cleanup stale entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			ll.mu.Lock()
			for u, a := range ll.users {
				if time.Since(a.seen) > 3*time.Minute {
					delete(ll.users, u)
				}
			}
			ll.mu.Unlock()
		}
	}()
	return ll
}

func (ll *LoginLimiter) Allow(username string) bool {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	a, ok := ll.users[username]
	if !ok {
		a = &attempt{lim: rate.NewLimiter(ll.r, ll.burst)}
		ll.users[username] = a
	}
	a.seen = time.Now()
	return a.lim.Allow()
}
