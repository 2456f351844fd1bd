package moderation

import (
	"errors"
	"testing"
	"time"
)

// cloningStore returns a fresh snapshot per load so identity comparisons
// detect whether the cache reloaded.
type cloningStore struct {
	loads int
	err   error
}

func (s *cloningStore) LoadActiveKeywords() (*KeywordSet, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	set := NewKeywordSet()
	set.Blocked["spam"] = true
	return set, nil
}

func TestCacheReturnsSameSnapshotWithinTTL(t *testing.T) {
	store := &cloningStore{}
	cache := NewKeywordCache(store, time.Minute, false)

	first, err := cache.GetActiveKeywords()
	if err != nil {
		t.Fatalf("GetActiveKeywords failed: %v", err)
	}
	second, err := cache.GetActiveKeywords()
	if err != nil {
		t.Fatalf("GetActiveKeywords failed: %v", err)
	}

	if first != second {
		t.Error("expected the same snapshot instance within the TTL")
	}
	if store.loads != 1 {
		t.Errorf("store loaded %d times, want 1", store.loads)
	}
}

func TestCacheReloadsAfterExpiry(t *testing.T) {
	store := &cloningStore{}
	cache := NewKeywordCache(store, 10*time.Millisecond, false)

	first, _ := cache.GetActiveKeywords()
	time.Sleep(20 * time.Millisecond)
	second, _ := cache.GetActiveKeywords()

	if first == second {
		t.Error("expected a fresh snapshot after expiry")
	}
	if store.loads != 2 {
		t.Errorf("store loaded %d times, want 2", store.loads)
	}
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	store := &cloningStore{}
	cache := NewKeywordCache(store, time.Hour, false)

	first, _ := cache.GetActiveKeywords()
	cache.Invalidate()
	second, _ := cache.GetActiveKeywords()

	if first == second {
		t.Error("expected a fresh snapshot after Invalidate")
	}
	if store.loads != 2 {
		t.Errorf("store loaded %d times, want 2", store.loads)
	}
}

func TestCacheFailOpenReturnsEmptySet(t *testing.T) {
	store := &cloningStore{err: errors.New("store down")}
	cache := NewKeywordCache(store, time.Minute, false)

	set, err := cache.GetActiveKeywords()
	if err != nil {
		t.Fatalf("fail-open cache must not return an error, got %v", err)
	}
	if set == nil || set.Size() != 0 {
		t.Errorf("expected an empty keyword set, got %+v", set)
	}

	// The empty set is cached until expiry so a broken store isn't hit on
	// every submission.
	if _, err := cache.GetActiveKeywords(); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if store.loads != 1 {
		t.Errorf("store loaded %d times, want 1", store.loads)
	}
}

func TestCacheFailClosedReturnsError(t *testing.T) {
	store := &cloningStore{err: errors.New("store down")}
	cache := NewKeywordCache(store, time.Minute, true)

	if _, err := cache.GetActiveKeywords(); err == nil {
		t.Fatal("expected an error with fail-closed policy")
	}

	// Errors are not cached; recovery is visible on the next read.
	store.err = nil
	set, err := cache.GetActiveKeywords()
	if err != nil {
		t.Fatalf("recovered store still errors: %v", err)
	}
	if !set.IsBlockedWord("spam") {
		t.Error("expected the reloaded rule set")
	}
}
