package types

import "fmt"

// StepStatus is the closed set of workflow step states. Any state is
// reachable from any other via explicit edit; no transitions are enforced.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusActive    StepStatus = "active"
	StatusCompleted StepStatus = "completed"
)

// Valid reports whether the status is one of the three enumerated states.
func (s StepStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// ParseStepStatus converts free text into a StepStatus.
func ParseStepStatus(v string) (StepStatus, error) {
	s := StepStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown step status %q (want pending, active or completed)", v)
	}
	return s, nil
}

// RentalStatus toggles only between the two values.
type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
)

func (s RentalStatus) Valid() bool {
	return s == RentalActive || s == RentalReturned
}

// Toggle flips between active and returned. No other transition exists.
func (s RentalStatus) Toggle() RentalStatus {
	if s == RentalReturned {
		return RentalActive
	}
	return RentalReturned
}

// WorkerType categorizes how a crew member is paid. Fixed-fee workers carry
// no daily rate: the wage is forced to zero whenever the type says so.
type WorkerType string

const (
	WorkerDailyRate WorkerType = "daily-rate"
	WorkerFixedFee  WorkerType = "fixed-fee"
)

func (t WorkerType) Valid() bool {
	return t == WorkerDailyRate || t == WorkerFixedFee
}

// ParseWorkerType converts free text into a WorkerType, defaulting to
// daily-rate for the empty string.
func ParseWorkerType(v string) (WorkerType, error) {
	if v == "" {
		return WorkerDailyRate, nil
	}
	t := WorkerType(v)
	if !t.Valid() {
		return "", fmt.Errorf("unknown worker type %q (want daily-rate or fixed-fee)", v)
	}
	return t, nil
}
