package sitemaster_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sitemasterhq/sitemaster/sitemaster"
)

func newTestStore(t *testing.T, opts ...sitemaster.Option) *sitemaster.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	store, err := sitemaster.Open(path, opts...)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// testClock is a settable wall clock for deterministic timer and rental
// tests.
type testClock struct {
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
