package sitemaster_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

func TestTimerStartStopAccumulates(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if err := store.StartTimer(); err != nil {
		t.Fatalf("failed to start timer: %v", err)
	}
	clock.Advance(90 * time.Second)

	entry, err := store.StopTimer()
	if err != nil {
		t.Fatalf("failed to stop timer: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a time log entry for a non-empty session")
	}
	if entry.Duration != "00:01:30" {
		t.Errorf("expected duration 00:01:30, got %q", entry.Duration)
	}
	if entry.Date != "20/11/2025" {
		t.Errorf("expected log date 20/11/2025, got %q", entry.Date)
	}

	doc := store.Document()
	if doc.Timer.TotalSeconds != 90 {
		t.Errorf("expected 90 accumulated seconds, got %d", doc.Timer.TotalSeconds)
	}
	if doc.Timer.IsActive || doc.Timer.StartTime != nil {
		t.Errorf("expected idle timer after stop, got %#v", doc.Timer)
	}
	if len(doc.TimeLogs) != 1 {
		t.Errorf("expected 1 time log, got %d", len(doc.TimeLogs))
	}
}

func TestTimerElapsedFloorsPartialSeconds(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if err := store.StartTimer(); err != nil {
		t.Fatalf("failed to start timer: %v", err)
	}
	clock.Advance(90*time.Second + 900*time.Millisecond)

	if got := store.Elapsed(); got != 90 {
		t.Errorf("expected elapsed floored to 90, got %d", got)
	}
	if _, err := store.StopTimer(); err != nil {
		t.Fatalf("failed to stop timer: %v", err)
	}
	if got := store.Document().Timer.TotalSeconds; got != 90 {
		t.Errorf("expected stored total floored to 90, got %d", got)
	}
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if err := store.StartTimer(); err != nil {
		t.Fatalf("failed to start timer: %v", err)
	}
	anchor := store.Document().Timer.StartTime
	clock.Advance(30 * time.Second)
	if err := store.StartTimer(); err != nil {
		t.Fatalf("second start must not fail: %v", err)
	}
	if got := store.Document().Timer.StartTime; !got.Equal(*anchor) {
		t.Errorf("second start must not move the anchor: %v vs %v", got, anchor)
	}
}

func TestTimerStopWhileIdleIsNoop(t *testing.T) {
	store := newTestStore(t)
	entry, err := store.StopTimer()
	if err != nil {
		t.Fatalf("stop of idle timer must not fail: %v", err)
	}
	if entry != nil {
		t.Errorf("stop of idle timer must not emit a log, got %#v", entry)
	}
}

func TestTimerZeroLengthSessionEmitsNoLog(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if err := store.StartTimer(); err != nil {
		t.Fatalf("failed to start timer: %v", err)
	}
	entry, err := store.StopTimer()
	if err != nil {
		t.Fatalf("failed to stop timer: %v", err)
	}
	if entry != nil {
		t.Errorf("zero-length session must not emit a log, got %#v", entry)
	}
	if len(store.Document().TimeLogs) != 0 {
		t.Error("expected no time logs")
	}
}

func TestTimerReset(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if err := store.StartTimer(); err != nil {
		t.Fatalf("failed to start timer: %v", err)
	}
	clock.Advance(time.Minute)
	if err := store.ResetTimer(); err != nil {
		t.Fatalf("failed to reset timer: %v", err)
	}
	timer := store.Document().Timer
	if timer.IsActive || timer.TotalSeconds != 0 || timer.StartTime != nil {
		t.Errorf("expected zeroed idle timer after reset, got %#v", timer)
	}
}

func TestTimerResumesAcrossReload(t *testing.T) {
	// A previous session died with the timer running: 100 accumulated
	// seconds and a start anchor 30 seconds ago. Reopening credits the gap
	// and keeps the timer running from a fresh anchor.
	start := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	doc := types.DefaultDocument()
	doc.Timer = types.TimerState{IsActive: true, TotalSeconds: 100, StartTime: &start}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "site.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	clock := newTestClock(start.Add(30 * time.Second))
	store, err := sitemaster.Open(path, sitemaster.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	timer := store.Document().Timer
	if timer.TotalSeconds != 130 {
		t.Errorf("expected 100+30 accumulated seconds, got %d", timer.TotalSeconds)
	}
	if !timer.IsActive {
		t.Error("expected timer still running after resume")
	}
	if timer.StartTime == nil || !timer.StartTime.Equal(clock.Now()) {
		t.Errorf("expected fresh start anchor at reopen time, got %v", timer.StartTime)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{90, "00:01:30"},
		{3661, "01:01:01"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
	}
	for _, tt := range tests {
		if got := sitemaster.FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
