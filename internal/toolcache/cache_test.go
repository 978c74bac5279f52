package toolcache

import (
	"errors"
	"testing"
	"time"
)

func TestDoCachesWithinTTL(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fill := func() (any, error) { calls++; return "v", nil }

	key := Key("config_list_queues", map[string]any{"instance_id": "abc"})
	for i := 0; i < 3; i++ {
		v, err := c.Do(key, fill)
		if err != nil {
			t.Fatalf("do: %v", err)
		}
		if v != "v" {
			t.Fatalf("unexpected value %v", v)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one fill, got %d", calls)
	}
}

func TestDoRefillsAfterExpiry(t *testing.T) {
	c := New(time.Minute)
	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	calls := 0
	fill := func() (any, error) { calls++; return calls, nil }

	key := Key("op", nil)
	if _, err := c.Do(key, fill); err != nil {
		t.Fatalf("do: %v", err)
	}
	current = current.Add(2 * time.Minute)
	v, err := c.Do(key, fill)
	if err != nil {
		t.Fatalf("do after expiry: %v", err)
	}
	if v != 2 || calls != 2 {
		t.Fatalf("expected refill, got v=%v calls=%d", v, calls)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fill := func() (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("throttled")
		}
		return "ok", nil
	}
	key := Key("op", nil)
	if _, err := c.Do(key, fill); err == nil {
		t.Fatal("expected first call to fail")
	}
	v, err := c.Do(key, fill)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if v != "ok" || calls != 2 {
		t.Fatalf("expected retry to fill, got v=%v calls=%d", v, calls)
	}
}

func TestKeyIsStableAcrossArgumentOrder(t *testing.T) {
	a := Key("op", map[string]any{"x": 1, "y": "z"})
	b := Key("op", map[string]any{"y": "z", "x": 1})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a == Key("op", map[string]any{"x": 2, "y": "z"}) {
		t.Fatal("different args must produce different keys")
	}
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	c := New(0)
	calls := 0
	fill := func() (any, error) { calls++; return calls, nil }
	key := Key("op", nil)
	c.Do(key, fill)
	c.Do(key, fill)
	if calls != 2 {
		t.Fatalf("expected no caching with zero TTL, got %d calls", calls)
	}
}
