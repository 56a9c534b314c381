// Package types defines the site document schema: the root aggregate, its
// entity collections and the closed enumerations used by business rules.
package types

import "time"

// Document is the root aggregate. It exclusively owns every collection and
// the singleton timer; entities are flat and never referenced from two
// collections. Insertion order of each collection is significant (it is the
// creation-order ledger).
type Document struct {
	Materials     []Material     `json:"materials"`
	Workflow      []WorkflowStep `json:"workflow"`
	TimeLogs      []TimeLog      `json:"timeLogs"`
	Workers       []Worker       `json:"workers"`
	Stores        []StoreContact `json:"stores"`
	Rentals       []Rental       `json:"rentals"`
	Timer         TimerState     `json:"timer"`
	CompareResult *CompareResult `json:"compareResult"`
}

// TimerState is the singleton stopwatch state. StartTime is non-nil iff
// IsActive is true.
type TimerState struct {
	IsActive     bool       `json:"isActive"`
	TotalSeconds int64      `json:"totalSeconds"`
	StartTime    *time.Time `json:"startTime"`
}

// DefaultDocument returns a document with every collection empty and the
// timer idle. Collections default to empty, never nil, so that a partial
// load can be merged over it field by field.
func DefaultDocument() *Document {
	return &Document{
		Materials: []Material{},
		Workflow:  []WorkflowStep{},
		TimeLogs:  []TimeLog{},
		Workers:   []Worker{},
		Stores:    []StoreContact{},
		Rentals:   []Rental{},
		Timer: TimerState{
			IsActive:     false,
			TotalSeconds: 0,
			StartTime:    nil,
		},
	}
}

// Normalize backfills fields a persisted value from an older schema may
// lack. Collections missing from the parsed form come back as nil slices
// and are replaced with their empty defaults; the timer's fields are
// reconciled individually so that an inconsistent pair (active with no
// start time) degrades to idle instead of violating the timer invariant.
func (d *Document) Normalize() {
	if d.Materials == nil {
		d.Materials = []Material{}
	}
	if d.Workflow == nil {
		d.Workflow = []WorkflowStep{}
	}
	if d.TimeLogs == nil {
		d.TimeLogs = []TimeLog{}
	}
	if d.Workers == nil {
		d.Workers = []Worker{}
	}
	if d.Stores == nil {
		d.Stores = []StoreContact{}
	}
	if d.Rentals == nil {
		d.Rentals = []Rental{}
	}
	if d.Timer.TotalSeconds < 0 {
		d.Timer.TotalSeconds = 0
	}
	if d.Timer.IsActive && d.Timer.StartTime == nil {
		d.Timer.IsActive = false
	}
	if !d.Timer.IsActive {
		d.Timer.StartTime = nil
	}
	for i := range d.Workflow {
		if d.Workflow[i].SubTasks == nil {
			d.Workflow[i].SubTasks = []SubTask{}
		}
		if !d.Workflow[i].Status.Valid() {
			d.Workflow[i].Status = StatusPending
		}
	}
	for i := range d.Rentals {
		if !d.Rentals[i].Status.Valid() {
			d.Rentals[i].Status = RentalActive
		}
	}
	for i := range d.Workers {
		if !d.Workers[i].Type.Valid() {
			d.Workers[i].Type = WorkerDailyRate
		}
	}
}

// Clone returns a deep copy of the document. Mutating the copy never
// touches the original, including nested sub-task lists.
func (d *Document) Clone() *Document {
	out := &Document{
		Materials: make([]Material, len(d.Materials)),
		Workflow:  make([]WorkflowStep, len(d.Workflow)),
		TimeLogs:  make([]TimeLog, len(d.TimeLogs)),
		Workers:   make([]Worker, len(d.Workers)),
		Stores:    make([]StoreContact, len(d.Stores)),
		Rentals:   make([]Rental, len(d.Rentals)),
		Timer:     d.Timer,
	}
	copy(out.Materials, d.Materials)
	copy(out.TimeLogs, d.TimeLogs)
	copy(out.Workers, d.Workers)
	copy(out.Stores, d.Stores)
	copy(out.Rentals, d.Rentals)
	for i, step := range d.Workflow {
		out.Workflow[i] = step.Clone()
	}
	if d.Timer.StartTime != nil {
		t := *d.Timer.StartTime
		out.Timer.StartTime = &t
	}
	if d.CompareResult != nil {
		cr := *d.CompareResult
		out.CompareResult = &cr
	}
	return out
}
