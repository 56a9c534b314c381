package sitemaster

import (
	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// DefaultDailyWage applies when a daily-rate worker is added without a rate.
const DefaultDailyWage = 350

// defaultRole labels workers added without a role.
const defaultRole = "general"

// WorkerInput carries the fields for adding a crew member.
type WorkerInput struct {
	Name string
	Role string
	Type types.WorkerType
	Wage float64
}

// AddWorker registers a crew member, present by default with zeroed
// balances. Fixed-fee workers carry no daily rate; their wage is forced to
// zero regardless of input.
func (s *Store) AddWorker(in WorkerInput) (types.Worker, error) {
	name := validation.CleanText(in.Name)
	if name == "" {
		return types.Worker{}, errRequired("name")
	}
	workerType := in.Type
	if workerType == "" {
		workerType = types.WorkerDailyRate
	}
	if !workerType.Valid() {
		return types.Worker{}, &ValidationError{Field: "type", Reason: "must be daily-rate or fixed-fee"}
	}
	wage := validation.NonNegative(in.Wage)
	switch {
	case workerType == types.WorkerFixedFee:
		wage = 0
	case wage == 0:
		wage = DefaultDailyWage
	}

	var created types.Worker
	err := s.mutate(func(doc *types.Document) error {
		created = types.Worker{
			ID:        s.nextID(),
			Name:      name,
			Role:      defaultText(in.Role, defaultRole),
			Type:      workerType,
			Wage:      wage,
			IsPresent: true,
		}
		doc.Workers = append(doc.Workers, created)
		return nil
	})
	return created, err
}

// UpdateWorker merges the patch into the worker with the given id. The
// fixed-fee rule is re-applied after the merge so a type change can never
// leave a stale daily rate behind.
func (s *Store) UpdateWorker(id int64, patch types.WorkerPatch) (types.Worker, error) {
	var updated types.Worker
	err := s.mutate(func(doc *types.Document) error {
		i := indexWorker(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		w := &doc.Workers[i]
		if patch.Name != nil {
			name := validation.CleanText(*patch.Name)
			if name == "" {
				return errRequired("name")
			}
			w.Name = name
		}
		if patch.Role != nil {
			w.Role = defaultText(*patch.Role, defaultRole)
		}
		if patch.Type != nil {
			if !patch.Type.Valid() {
				return &ValidationError{Field: "type", Reason: "must be daily-rate or fixed-fee"}
			}
			w.Type = *patch.Type
		}
		if patch.Wage != nil {
			w.Wage = validation.NonNegative(*patch.Wage)
		}
		if patch.AccumulatedWage != nil {
			w.AccumulatedWage = validation.NonNegative(*patch.AccumulatedWage)
		}
		if patch.AdvancePayment != nil {
			w.AdvancePayment = validation.NonNegative(*patch.AdvancePayment)
		}
		if w.Type == types.WorkerFixedFee {
			w.Wage = 0
		}
		updated = *w
		return nil
	})
	return updated, err
}

// RemoveWorker deletes the worker with the given id. A no-op if not present.
func (s *Store) RemoveWorker(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.Workers[:0]
		for _, w := range doc.Workers {
			if w.ID != id {
				out = append(out, w)
			}
		}
		doc.Workers = out
		return nil
	})
}

// ToggleWorkerPresence flips today's attendance mark for one worker.
func (s *Store) ToggleWorkerPresence(id int64) (types.Worker, error) {
	var updated types.Worker
	err := s.mutate(func(doc *types.Document) error {
		i := indexWorker(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		doc.Workers[i].IsPresent = !doc.Workers[i].IsPresent
		updated = doc.Workers[i]
		return nil
	})
	return updated, err
}

// ListWorkers returns the crew in insertion order.
func (s *Store) ListWorkers() []types.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Worker, len(s.doc.Workers))
	copy(out, s.doc.Workers)
	return out
}

// CheckoutDay closes the working day: every present worker's daily wage is
// added to their accumulated balance and their presence is cleared so the
// next day starts with nobody marked in. Returns the number of workers
// processed. Not idempotent: calling it twice in one day double-counts, so
// the caller invokes it at most once per working day.
func (s *Store) CheckoutDay() (int, error) {
	count := 0
	err := s.mutate(func(doc *types.Document) error {
		for i := range doc.Workers {
			if doc.Workers[i].IsPresent {
				doc.Workers[i].AccumulatedWage += doc.Workers[i].Wage
				doc.Workers[i].IsPresent = false
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ClearCycle closes the pay period: accumulated wages and advances are
// zeroed for every worker. Irreversible; no audit trail is kept here.
func (s *Store) ClearCycle() error {
	return s.mutate(func(doc *types.Document) error {
		for i := range doc.Workers {
			doc.Workers[i].AccumulatedWage = 0
			doc.Workers[i].AdvancePayment = 0
		}
		return nil
	})
}

// DailyTotal sums the daily wage over workers currently marked present,
// for a same-day payout estimate ahead of checkout.
func (s *Store) DailyTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, w := range s.doc.Workers {
		if w.IsPresent {
			total += w.Wage
		}
	}
	return total
}

// WageReportLine is one present worker on the daily wage report.
type WageReportLine struct {
	Name string
	Role string
	Wage float64
}

// DailyWageReport lists the present crew and their combined daily wage.
type DailyWageReport struct {
	Lines        []WageReportLine
	PresentCount int
	Total        float64
}

// DailyReport builds the same-day payout report over present workers.
func (s *Store) DailyReport() DailyWageReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report := DailyWageReport{Lines: []WageReportLine{}}
	for _, w := range s.doc.Workers {
		if !w.IsPresent {
			continue
		}
		report.Lines = append(report.Lines, WageReportLine{Name: w.Name, Role: w.Role, Wage: w.Wage})
		report.PresentCount++
		report.Total += w.Wage
	}
	return report
}

// CrewSummary totals the crew financials for the payroll report.
type CrewSummary struct {
	TotalAccumulated float64
	TotalAdvance     float64
	TotalNet         float64
}

// Summary totals accumulated wages, advances and net payable over the
// whole crew.
func (s *Store) Summary() CrewSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum CrewSummary
	for _, w := range s.doc.Workers {
		sum.TotalAccumulated += w.AccumulatedWage
		sum.TotalAdvance += w.AdvancePayment
		sum.TotalNet += w.NetPayable()
	}
	return sum
}

func indexWorker(doc *types.Document, id int64) int {
	for i, w := range doc.Workers {
		if w.ID == id {
			return i
		}
	}
	return -1
}
