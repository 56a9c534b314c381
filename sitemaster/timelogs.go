package sitemaster

import (
	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// TimeLogInput carries the fields for recording a work span by hand. Blank
// fields take the usual defaults (today, zero duration).
type TimeLogInput struct {
	Date     string
	Duration string
	Desc     string
}

// AddTimeLog records a manual time log entry at the top of the list, where
// timer-emitted entries also land (newest first).
func (s *Store) AddTimeLog(in TimeLogInput) (types.TimeLog, error) {
	desc := validation.CleanText(in.Desc)
	if desc == "" {
		return types.TimeLog{}, errRequired("desc")
	}

	var created types.TimeLog
	err := s.mutate(func(doc *types.Document) error {
		created = types.TimeLog{
			ID:       s.nextID(),
			Date:     defaultText(in.Date, s.now().Format(logDateLayout)),
			Duration: defaultText(in.Duration, "00:00:00"),
			Desc:     desc,
		}
		doc.TimeLogs = append([]types.TimeLog{created}, doc.TimeLogs...)
		return nil
	})
	return created, err
}

// UpdateTimeLog merges the patch into the log with the given id.
func (s *Store) UpdateTimeLog(id int64, patch types.TimeLogPatch) (types.TimeLog, error) {
	var updated types.TimeLog
	err := s.mutate(func(doc *types.Document) error {
		i := indexTimeLog(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		l := &doc.TimeLogs[i]
		if patch.Desc != nil {
			l.Desc = defaultText(*patch.Desc, "work session")
		}
		if patch.Duration != nil {
			l.Duration = defaultText(*patch.Duration, "00:00:00")
		}
		if patch.Date != nil {
			l.Date = defaultText(*patch.Date, s.now().Format(logDateLayout))
		}
		updated = *l
		return nil
	})
	return updated, err
}

// RemoveTimeLog deletes the log with the given id. A no-op if not present.
func (s *Store) RemoveTimeLog(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.TimeLogs[:0]
		for _, l := range doc.TimeLogs {
			if l.ID != id {
				out = append(out, l)
			}
		}
		doc.TimeLogs = out
		return nil
	})
}

// ListTimeLogs returns the time logs in stored order, newest first.
func (s *Store) ListTimeLogs() []types.TimeLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.TimeLog, len(s.doc.TimeLogs))
	copy(out, s.doc.TimeLogs)
	return out
}

func indexTimeLog(doc *types.Document, id int64) int {
	for i, l := range doc.TimeLogs {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func defaultText(v, fallback string) string {
	v = validation.CleanText(v)
	if v == "" {
		return fallback
	}
	return v
}
