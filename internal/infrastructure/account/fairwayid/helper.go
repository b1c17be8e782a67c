package fairwayid

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fairwayhq/fairway-finder/internal/domain/user"
)

func isCircuitFailure(err error) bool {
	return errors.Is(err, errFairwayIDTransient)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}

type principalEntry struct {
	principal user.Principal
	expiresAt time.Time
}

// principalCache is a bounded TTL map. When full it evicts the entry closest
// to expiry.
type principalCache struct {
	mu         sync.Mutex
	entries    map[string]principalEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newPrincipalCache(ttl time.Duration, maxEntries int) *principalCache {
	return &principalCache{
		entries:    make(map[string]principalEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *principalCache) get(key string) (user.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return user.Principal{}, false
	}
	if !e.expiresAt.After(c.now()) {
		delete(c.entries, key)
		return user.Principal{}, false
	}

	return e.principal, true
}

func (c *principalCache) put(key string, principal user.Principal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}

	c.entries[key] = principalEntry{
		principal: principal,
		expiresAt: now.Add(c.ttl),
	}
}

func (c *principalCache) evictLocked(now time.Time) {
	var victim string
	var victimExpiry time.Time
	for key, e := range c.entries {
		if !e.expiresAt.After(now) {
			delete(c.entries, key)
			continue
		}
		if victim == "" || e.expiresAt.Before(victimExpiry) {
			victim = key
			victimExpiry = e.expiresAt
		}
	}
	if len(c.entries) >= c.maxEntries && victim != "" {
		delete(c.entries, victim)
	}
}
