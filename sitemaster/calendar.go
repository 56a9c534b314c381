package sitemaster

import (
	"strconv"
	"strings"
	"time"

	"github.com/sitemasterhq/sitemaster/types"
)

// CalendarCell is one slot in the month grid. Day 0 marks a leading blank
// cell padding the weekday offset of the first of the month.
type CalendarCell struct {
	Day   int
	Steps []types.WorkflowStep
}

// MonthGrid is a 7-column month view with workflow steps attached to the
// days their free-text dates loosely match.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []CalendarCell
}

// ProjectMonth maps workflow steps onto the grid for the given month. The
// step date field is user-entered free text, so matching is deliberately
// approximate: a step lands on a day when its date contains both the day
// number and the abbreviated month name as substrings, or when its date is
// the literal "today" marker and the day is today's date. Strict date
// parsing would break the free-text model.
func ProjectMonth(steps []types.WorkflowStep, year int, month time.Month, today time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	abbrev := month.String()[:3]

	grid := MonthGrid{Year: year, Month: month}
	for i := 0; i < int(first.Weekday()); i++ {
		grid.Cells = append(grid.Cells, CalendarCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := CalendarCell{Day: day}
		dayStr := strconv.Itoa(day)
		isToday := today.Year() == year && today.Month() == month && today.Day() == day
		for _, step := range steps {
			switch {
			case step.Date == types.DateToday && isToday:
				cell.Steps = append(cell.Steps, step.Clone())
			case strings.Contains(step.Date, dayStr) && strings.Contains(step.Date, abbrev):
				cell.Steps = append(cell.Steps, step.Clone())
			}
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}

// ProjectMonth projects the current workflow onto the given month.
func (s *Store) ProjectMonth(year int, month time.Month) MonthGrid {
	s.mu.RLock()
	steps := make([]types.WorkflowStep, len(s.doc.Workflow))
	copy(steps, s.doc.Workflow)
	s.mu.RUnlock()
	return ProjectMonth(steps, year, month, s.now())
}
