package sitemaster

import (
	"fmt"

	"github.com/sitemasterhq/sitemaster/types"
)

// logDateLayout is the day format used on time log entries.
const logDateLayout = "02/01/2006"

// sessionDesc tags time logs emitted at the session boundary.
const sessionDesc = "work session (start - pause)"

// StartTimer switches the stopwatch to Running, anchored at the current
// wall clock. A no-op if it is already running.
func (s *Store) StartTimer() error {
	return s.mutate(func(doc *types.Document) error {
		if doc.Timer.IsActive {
			return nil
		}
		now := s.now()
		doc.Timer.IsActive = true
		doc.Timer.StartTime = &now
		return nil
	})
}

// StopTimer switches the stopwatch to Idle, folding the elapsed whole
// seconds (floor, never rounded) into the accumulated total. When any time
// elapsed, a time log entry is emitted and returned. Idempotent: stopping
// an idle timer does nothing and returns nil.
func (s *Store) StopTimer() (*types.TimeLog, error) {
	var entry *types.TimeLog
	err := s.mutate(func(doc *types.Document) error {
		if !doc.Timer.IsActive || doc.Timer.StartTime == nil {
			return nil
		}
		now := s.now()
		elapsed := int64(now.Sub(*doc.Timer.StartTime).Seconds())
		if elapsed < 0 {
			elapsed = 0
		}
		doc.Timer.TotalSeconds += elapsed
		doc.Timer.IsActive = false
		doc.Timer.StartTime = nil

		if elapsed > 0 {
			log := types.TimeLog{
				ID:       s.nextID(),
				Date:     now.Format(logDateLayout),
				Duration: FormatDuration(elapsed),
				Desc:     sessionDesc,
			}
			doc.TimeLogs = append([]types.TimeLog{log}, doc.TimeLogs...)
			entry = &log
		}
		return nil
	})
	return entry, err
}

// ResetTimer forces Idle and zeroes the accumulated total. Unconditional.
func (s *Store) ResetTimer() error {
	return s.mutate(func(doc *types.Document) error {
		doc.Timer = types.TimerState{}
		return nil
	})
}

// Elapsed returns the accumulated seconds including the currently running
// session, for display refresh. Read-only; the stored total is only folded
// in on stop.
func (s *Store) Elapsed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := s.doc.Timer.TotalSeconds
	if s.doc.Timer.IsActive && s.doc.Timer.StartTime != nil {
		gap := int64(s.now().Sub(*s.doc.Timer.StartTime).Seconds())
		if gap > 0 {
			total += gap
		}
	}
	return total
}

// resumeTimer credits the wall-clock gap since the stale start time when
// the previous session died while the timer was running, preserving the
// illusion of continuous tracking across restarts.
func (s *Store) resumeTimer() (bool, error) {
	if !s.doc.Timer.IsActive || s.doc.Timer.StartTime == nil {
		return false, nil
	}
	err := s.mutate(func(doc *types.Document) error {
		now := s.now()
		gap := int64(now.Sub(*doc.Timer.StartTime).Seconds())
		if gap > 0 {
			doc.Timer.TotalSeconds += gap
		}
		doc.Timer.StartTime = &now
		return nil
	})
	return err == nil, err
}

// FormatDuration renders whole seconds as zero-padded HH:MM:SS with an
// unbounded hour component.
func FormatDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	sec := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
