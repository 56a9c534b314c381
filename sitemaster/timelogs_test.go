package sitemaster_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

func TestManualTimeLogLifecycle(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	if _, err := store.AddTimeLog(sitemaster.TimeLogInput{}); err == nil {
		t.Fatal("expected validation error for blank description")
	}

	first, err := store.AddTimeLog(sitemaster.TimeLogInput{Desc: "morning concrete pour"})
	if err != nil {
		t.Fatalf("failed to add time log: %v", err)
	}
	if first.Date != "20/11/2025" {
		t.Errorf("expected today's date by default, got %q", first.Date)
	}
	if first.Duration != "00:00:00" {
		t.Errorf("expected zero duration by default, got %q", first.Duration)
	}

	second, err := store.AddTimeLog(sitemaster.TimeLogInput{Desc: "afternoon rebar", Duration: "02:30:00"})
	if err != nil {
		t.Fatalf("failed to add time log: %v", err)
	}

	logs := store.ListTimeLogs()
	if len(logs) != 2 || logs[0].ID != second.ID || logs[1].ID != first.ID {
		t.Errorf("expected newest-first order, got %#v", logs)
	}

	duration := "01:00:00"
	updated, err := store.UpdateTimeLog(first.ID, types.TimeLogPatch{Duration: &duration})
	if err != nil {
		t.Fatalf("failed to update time log: %v", err)
	}
	if updated.Duration != "01:00:00" || updated.Desc != "morning concrete pour" {
		t.Errorf("unexpected patched log: %#v", updated)
	}

	if _, err := store.UpdateTimeLog(424242, types.TimeLogPatch{Duration: &duration}); !errors.Is(err, sitemaster.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.RemoveTimeLog(second.ID); err != nil {
		t.Fatalf("failed to remove time log: %v", err)
	}
	if got := store.ListTimeLogs(); len(got) != 1 || got[0].ID != first.ID {
		t.Errorf("expected only the first log left, got %#v", got)
	}
}
