package auth

import (
	"context"
	"sync"
	"time"
)

// Blacklist is an in-process store of revoked token IDs (jti), populated on
// logout. Entries are kept until the token they belong to would have expired
// anyway, then dropped by the sweeper.
//
// This store is per-process. In a multi-instance deployment revocations made
// on one instance are not visible to the others; a shared store (e.g. Redis)
// is required there. Kept in-process here to match the single-server setup.
type Blacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewBlacklist creates an empty blacklist.
func NewBlacklist() *Blacklist {
	return &Blacklist{
		revoked: make(map[string]time.Time),
	}
}

// Add marks a token ID as revoked until its expiry time.
func (b *Blacklist) Add(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = expiresAt
}

// Contains reports whether the token ID has been revoked and is still unexpired.
func (b *Blacklist) Contains(tokenID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	exp, ok := b.revoked[tokenID]
	if !ok {
		return false
	}
	return time.Now().UTC().Before(exp)
}

// Sweep removes entries whose tokens have expired.
func (b *Blacklist) Sweep() {
	now := time.Now().UTC()
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, exp := range b.revoked {
		if !now.Before(exp) {
			delete(b.revoked, id)
		}
	}
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (b *Blacklist) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.Sweep()
			}
		}
	}()
}
