package memcache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// shardCount spreads keys over independent locks so unrelated queries never
// serialize on a single mutex.
const shardCount = 32

type entry struct {
	value     []byte
	expiresAt time.Time
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// Store is a sharded in-process TTL cache. Values are copied on Set and Get,
// callers can never observe a partially-written or later-mutated entry.
type Store struct {
	shards [shardCount]*shard
}

func New() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[string]entry)}
	}
	return s
}

func (s *Store) shardFor(key string) *shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return s.shards[h.Sum32()%shardCount]
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	sh := s.shardFor(key)

	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		// lazy eviction, the sweeper catches anything never read again
		sh.mu.Lock()
		if cur, ok := sh.entries[key]; ok && time.Now().After(cur.expiresAt) {
			delete(sh.entries, key)
		}
		sh.mu.Unlock()
		return nil, false
	}

	return append([]byte(nil), e.value...), true
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{
		value:     append([]byte(nil), value...),
		expiresAt: time.Now().Add(ttl),
	}

	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.entries[key] = e
	sh.mu.Unlock()

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.entries = make(map[string]entry)
		sh.mu.Unlock()
	}
	return nil
}

// Sweep removes expired entries and reports how many it evicted. Wired to a
// periodic job so abandoned keys don't pile up between reads.
func (s *Store) Sweep() int {
	now := time.Now()
	evicted := 0

	for _, sh := range s.shards {
		sh.mu.Lock()
		for key, e := range sh.entries {
			if now.After(e.expiresAt) {
				delete(sh.entries, key)
				evicted++
			}
		}
		sh.mu.Unlock()
	}
	return evicted
}

// Len counts live entries, expired-but-unswept ones included.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}
