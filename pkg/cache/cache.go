// Package cache stores serialized analysis results with a fixed time to live.
package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultTTL of an entry
const DefaultTTL = time.Hour

var ErrUnknownBackend = errors.New("unknown cache backend")

// backends
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Entry is a cached value and its creation time
type Entry struct {
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Stale reports whether e has lived at least ttl at now
func (e Entry) Stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) >= ttl
}

// Cache is safe for concurrent use; concurrent writers to one key race and
// the last one wins. A stale entry is reported as a miss.
type Cache interface {
	Get(key string) (Entry, bool, error)
	Put(key string, data []byte) error
}

// Config selects and tunes a backend
type Config struct {
	Backend string `mapstructure:"backend"`
	// Path of the badger directory; empty opens badger in memory
	Path string        `mapstructure:"path"`
	TTL  time.Duration `mapstructure:"ttl"`
}

func DefaultConfig() Config {
	return Config{Backend: BackendMemory, TTL: DefaultTTL}
}

// Validate normalizes the backend name and rejects unknown ones
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "":
		c.Backend = BackendMemory
	case BackendMemory, BackendBadger:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	return nil
}

// New opens the configured backend. The caller closes it when it implements io.Closer.
func New(cfg Config, logger *slog.Logger) (Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendBadger:
		return OpenBadger(cfg.Path, cfg.TTL, logger)
	default:
		return NewMemory(cfg.TTL), nil
	}
}
