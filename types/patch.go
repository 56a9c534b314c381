package types

// Patch structs specify fields to change on an existing entity. A nil field
// leaves the current value untouched, so editing text fields never clobbers
// an attached image.

// MaterialPatch updates a material in place.
type MaterialPatch struct {
	Name     *string
	Price    *float64
	Location *string
	Image    *string
}

// StepPatch updates a workflow step in place. SubTasks, when set, replaces
// the whole checklist.
type StepPatch struct {
	Step     *string
	Date     *string
	Status   *StepStatus
	Image    *string
	SubTasks *[]SubTask
}

// TimeLogPatch updates a time log in place.
type TimeLogPatch struct {
	Date     *string
	Duration *string
	Desc     *string
}

// WorkerPatch updates a worker in place. Balance fields are included so the
// financials can be corrected by hand.
type WorkerPatch struct {
	Name            *string
	Role            *string
	Type            *WorkerType
	Wage            *float64
	AccumulatedWage *float64
	AdvancePayment  *float64
}

// StoreContactPatch updates a vendor directory entry in place.
type StoreContactPatch struct {
	Name     *string
	Location *string
	Phone    *string
	Note     *string
}

// RentalPatch updates a rental in place.
type RentalPatch struct {
	Item       *string
	Provider   *string
	StartDate  *string
	ReturnDate *string
	Price      *float64
	Deposit    *float64
}
