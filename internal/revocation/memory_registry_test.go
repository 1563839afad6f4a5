package revocation

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRegistry_InsertAndContains(t *testing.T) {
	registry := NewMemoryRegistry(time.Hour)
	defer registry.Shutdown()
	ctx := context.Background()

	revoked, err := registry.Contains(ctx, "jti-1")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if revoked {
		t.Error("expected jti-1 to be absent before insert")
	}

	if err := registry.Insert(ctx, "jti-1"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	// Idempotent re-insert.
	if err := registry.Insert(ctx, "jti-1"); err != nil {
		t.Fatalf("re-insert failed: %v", err)
	}

	revoked, _ = registry.Contains(ctx, "jti-1")
	if !revoked {
		t.Error("expected jti-1 to be present after insert")
	}
}

func TestMemoryRegistry_PruneDropsExpiredOnly(t *testing.T) {
	registry := NewMemoryRegistry(time.Hour)
	defer registry.Shutdown()
	ctx := context.Background()

	_ = registry.Insert(ctx, "old")
	_ = registry.Insert(ctx, "fresh")

	registry.mu.Lock()
	registry.expires["old"] = time.Now().Add(-time.Minute)
	registry.mu.Unlock()

	registry.pruneOnce(time.Now())

	if revoked, _ := registry.Contains(ctx, "old"); revoked {
		t.Error("expected expired entry to be pruned")
	}
	if revoked, _ := registry.Contains(ctx, "fresh"); !revoked {
		t.Error("expected unexpired entry to survive pruning")
	}
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewMemoryRegistry(time.Hour)
	defer registry.Shutdown()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n * 2)

	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = registry.Insert(ctx, "shared-jti")
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Contains(ctx, "shared-jti")
		}()
	}
	wg.Wait()

	revoked, _ := registry.Contains(ctx, "shared-jti")
	if !revoked {
		t.Error("expected shared jti to be present after concurrent inserts")
	}
}
