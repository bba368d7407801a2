package render

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Standalone renders are deterministic, so repeated requests for the same
// record can be served from memory. Appends are never cached; the source
// document is part of the result.
const artifactTTL = 5 * time.Minute

type artifactEntry struct {
	data      []byte
	expiresAt time.Time
}

// artifactCache keeps recently rendered documents keyed by the record's
// payload and format.
type artifactCache struct {
	mu    sync.RWMutex
	items map[string]artifactEntry
}

func newArtifactCache() *artifactCache {
	return &artifactCache{items: make(map[string]artifactEntry)}
}

func artifactKey(payload, format, size, language string) string {
	h := sha256.New()
	h.Write([]byte(payload))
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(size))
	h.Write([]byte{0})
	h.Write([]byte(language))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *artifactCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

func (c *artifactCache) put(key string, data []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.items[key] = artifactEntry{data: data, expiresAt: time.Now().Add(artifactTTL)}
	c.mu.Unlock()
}
