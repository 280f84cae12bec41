package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching provider responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// RosterKey generates a cache key for a company's roster fetch.
func RosterKey(companyID string) string {
	hash := sha256.Sum256([]byte(companyID))
	return "buyerscope:roster:v1:" + hex.EncodeToString(hash[:])
}
