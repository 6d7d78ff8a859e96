package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex

	perSecond = rate.Limit(1)
	burst     = 3
)

// Configure sets the per-client rate; zero values keep the defaults.
func Configure(rps float64, b int) {
	mu.Lock()
	defer mu.Unlock()
	if rps > 0 {
		perSecond = rate.Limit(rps)
	}
	if b > 0 {
		burst = b
	}
}

func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(perSecond, burst)
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

func CleanupAllVisitors() {
	mu.Lock()
	visitors = make(map[string]*clientLimiter)
	mu.Unlock()
}
