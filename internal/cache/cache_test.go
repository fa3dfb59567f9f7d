package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int]()

	c.Set("wK", 42)

	val, ok := c.Get("wK")
	if !ok {
		t.Error("expected wK to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	_, ok = c.Get("bK")
	if ok {
		t.Error("expected bK to not exist")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := New[string, int]()
	c.Set("wP", 1)
	c.Set("wP", 2)

	if got, _ := c.Get("wP"); got != 2 {
		t.Errorf("expected overwritten value 2, got %d", got)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int]()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := strconv.Itoa(j % 12)
				c.Set(key, n)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 12 {
		t.Errorf("expected 12 entries, got %d", c.Len())
	}
}
