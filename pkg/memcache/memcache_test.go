package memcache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Set(ctx, "k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := s.Get(ctx, "k")
	if !ok || string(got) != "value" {
		t.Fatalf("Get: got %q ok=%v", got, ok)
	}

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestStore_ValueIsCopied(t *testing.T) {
	ctx := context.Background()
	s := New()

	src := []byte("original")
	_ = s.Set(ctx, "k", src, time.Minute)
	src[0] = 'X'

	got, _ := s.Get(ctx, "k")
	if string(got) != "original" {
		t.Fatalf("stored value must be immutable, got %q", got)
	}

	// mutating the returned slice must not corrupt the entry either
	got[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("entry corrupted by reader, got %q", again)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := New()

	_ = s.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("entry should be live before TTL")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := 0; i < 10; i++ {
		_ = s.Set(ctx, fmt.Sprintf("short:%d", i), []byte("v"), 5*time.Millisecond)
	}
	_ = s.Set(ctx, "long", []byte("v"), time.Minute)

	time.Sleep(10 * time.Millisecond)

	if n := s.Sweep(); n != 10 {
		t.Fatalf("want 10 evicted, got %d", n)
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 surviving entry, got %d", s.Len())
	}
	if _, ok := s.Get(ctx, "long"); !ok {
		t.Fatalf("unexpired entry must survive the sweep")
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i := 0; i < 50; i++ {
		_ = s.Set(ctx, fmt.Sprintf("k:%d", i), []byte("v"), time.Minute)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("want empty store, got %d entries", s.Len())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k:%d", i%20)
				_ = s.Set(ctx, key, []byte(fmt.Sprintf("w%d-i%d", w, i)), time.Minute)
				if v, ok := s.Get(ctx, key); ok && len(v) == 0 {
					t.Errorf("observed empty value for %s", key)
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Len() != 20 {
		t.Fatalf("want 20 distinct keys, got %d", s.Len())
	}
}
