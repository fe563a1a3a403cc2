package redisstore

import (
	"context"
	"time"

	"pulsewatch/internals/modules/sla"
)

// The distributed metrics-cache backend. Satisfies sla.Cache, so the service
// swaps between this and the in-process store without noticing.

func (c *Client) Get(ctx context.Context, key string) ([]byte, bool) {
	res, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// a miss and an unreachable redis look the same to the caller,
		// recomputing is the safe answer either way
		return nil, false
	}
	return res, true
}

func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return retry(ctx, 2, func() error {
		return c.rdb.Set(ctx, key, value, ttl).Err()
	})
}

// Clear drops every metrics entry via SCAN over the sla namespace; KEYS would
// block the server on large keyspaces.
func (c *Client) Clear(ctx context.Context) error {
	return retry(ctx, 2, func() error {
		iter := c.rdb.Scan(ctx, 0, sla.CacheKeyPrefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		return iter.Err()
	})
}
