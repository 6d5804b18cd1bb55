package cache

import (
	"slices"
	"sync"
	"time"
)

// Memory is an in-process map cache
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
	swept   time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
		swept:   time.Now(),
	}
}

// WithClock replaces the wall clock, for tests
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	m.swept = now()
	return m
}

// Get drops a stale entry and reports a miss
func (m *Memory) Get(key string) (Entry, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	now := m.now()
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	if e.Stale(now, m.ttl) {
		m.mu.Lock()
		// a concurrent Put may have refreshed it
		if cur, ok := m.entries[key]; ok && cur.Stale(now, m.ttl) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return Entry{}, false, nil
	}
	e.Data = slices.Clone(e.Data)
	return e, true, nil
}

// Put sweeps stale entries at most once per TTL window
func (m *Memory) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if now.Sub(m.swept) >= m.ttl {
		m.evict(now)
	}
	m.entries[key] = Entry{Data: slices.Clone(data), CreatedAt: now}
	return nil
}

// Evict removes stale entries and returns how many went
func (m *Memory) Evict() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evict(m.now())
}

func (m *Memory) evict(now time.Time) int {
	var n int
	for key, e := range m.entries {
		if e.Stale(now, m.ttl) {
			delete(m.entries, key)
			n++
		}
	}
	m.swept = now
	return n
}

// Len counts entries, stale ones not yet swept included
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Close() error {
	return nil
}
