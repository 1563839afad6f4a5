package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryRegistry is a process-local registry for single-instance
// deployments and tests. Revocations do not survive a restart; use
// RedisRegistry when that matters.
type MemoryRegistry struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	ttl     time.Duration

	stop     chan struct{}
	pruneWG  sync.WaitGroup
	stopOnce sync.Once
}

func NewMemoryRegistry(tokenTTL time.Duration) *MemoryRegistry {
	r := &MemoryRegistry{
		expires: make(map[string]time.Time),
		ttl:     tokenTTL,
		stop:    make(chan struct{}),
	}

	r.pruneWG.Add(1)
	go r.pruneLoop()

	return r
}

func (r *MemoryRegistry) Insert(_ context.Context, jti string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-inserting an already revoked jti keeps the original entry.
	if _, ok := r.expires[jti]; !ok {
		r.expires[jti] = time.Now().Add(r.ttl)
	}
	return nil
}

func (r *MemoryRegistry) Contains(_ context.Context, jti string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.expires[jti]
	return ok, nil
}

func (r *MemoryRegistry) pruneLoop() {
	defer r.pruneWG.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.pruneOnce(time.Now())
		case <-r.stop:
			return
		}
	}
}

// pruneOnce drops entries whose token has expired on its own; keeping
// them longer buys nothing since validation already rejects expiry.
func (r *MemoryRegistry) pruneOnce(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for jti, deadline := range r.expires {
		if now.After(deadline) {
			delete(r.expires, jti)
		}
	}
}

func (r *MemoryRegistry) Shutdown() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.pruneWG.Wait()
}
