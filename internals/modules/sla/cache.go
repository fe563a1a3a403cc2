package sla

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cache is the pluggable backend behind metric memoization. The local
// in-process store and the redis store both satisfy it; callers never know
// which one is active. A Get miss and a backend failure look the same —
// recomputing is always the safe answer.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}

// CacheKeyPrefix namespaces every metrics cache entry; the redis backend
// clears by scanning it.
const CacheKeyPrefix = "sla:"

// CacheKey builds a key from every query parameter so distinct queries never
// collide. The percentile list is sorted first: [50,95] and [95,50] are the
// same query.
func CacheKey(monitorID uuid.UUID, start, end time.Time, bucket BucketType, percentiles []int) string {
	ps := append([]int(nil), percentiles...)
	sort.Ints(ps)

	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, strconv.Itoa(p))
	}

	b := "none"
	if bucket != "" {
		b = string(bucket)
	}

	return fmt.Sprintf("%s%s:%s:%s:%s:%s",
		CacheKeyPrefix,
		monitorID,
		start.UTC().Format(time.RFC3339Nano),
		end.UTC().Format(time.RFC3339Nano),
		b,
		strings.Join(parts, ","),
	)
}
