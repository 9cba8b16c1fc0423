package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Entry is one cached suggestion list with its expiry.
type Entry struct {
	// Key is the SHA256 digest the entry is stored under.
	Key string `json:"key"`

	Suggestions []string  `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewEntry creates an entry that expires ttl from now.
func NewEntry(key string, suggestions []string, ttl time.Duration) *Entry {
	now := time.Now()
	return &Entry{
		Key:         key,
		Suggestions: suggestions,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

// IsExpired reports whether the entry has passed its expiry time.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Age returns the duration since the entry was created.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}

// Key derives a cache key from the parts of a request. Order matters; a
// NUL separator keeps ("ab", "c") and ("a", "bc") distinct.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
