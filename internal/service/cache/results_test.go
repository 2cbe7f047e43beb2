package cache

import (
	"testing"
	"time"

	"AlphaDesk/internal/domain/models"
)

func TestResultCacheGetPut(t *testing.T) {
	c := New(4, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := &models.SimulationResult{Seed: 42}
	c.Put("k", want)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got.Seed != 42 {
		t.Errorf("got seed %d, want 42", got.Seed)
	}
}

func TestResultCacheExpiry(t *testing.T) {
	c := New(4, 10*time.Millisecond)
	c.Put("k", &models.SimulationResult{})

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestResultCacheEviction(t *testing.T) {
	c := New(2, time.Minute)
	c.Put("a", &models.SimulationResult{Seed: 1})
	time.Sleep(time.Millisecond)
	c.Put("b", &models.SimulationResult{Seed: 2})
	time.Sleep(time.Millisecond)

	// Touch "a" so "b" becomes the LRU entry.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}
	time.Sleep(time.Millisecond)
	c.Put("c", &models.SimulationResult{Seed: 3})

	if c.Len() != 2 {
		t.Fatalf("got %d entries, want 2", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
}
