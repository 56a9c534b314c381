package types

// Markers used by free-text workflow dates. The date field is user-entered
// display text, not a strict calendar date.
const (
	DateToday = "today"
	DateUnset = "unset"
)

// UnspecifiedVendor is the material location fallback when none was given.
const UnspecifiedVendor = "unspecified"

// Material is one purchased item in the spending ledger.
// Date holds the creation timestamp in RFC 3339 form and is the ledger sort
// key; legacy entries without it fall back to the id, which is itself a
// wall-clock-derived surrogate for creation order.
type Material struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	Image    string  `json:"image,omitempty"`
	Date     string  `json:"date,omitempty"`
}

// SubTask is a checklist item nested under a workflow step.
type SubTask struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// WorkflowStep is one entry in the sequenced construction workflow.
// Date is free-form display text (may be "today", a localized day/month
// token, or "unset").
type WorkflowStep struct {
	ID       int64      `json:"id"`
	Step     string     `json:"step"`
	Date     string     `json:"date"`
	Status   StepStatus `json:"status"`
	Image    string     `json:"image,omitempty"`
	SubTasks []SubTask  `json:"subTasks"`
}

// Clone deep-copies the step including its sub-task list.
func (w WorkflowStep) Clone() WorkflowStep {
	out := w
	out.SubTasks = make([]SubTask, len(w.SubTasks))
	copy(out.SubTasks, w.SubTasks)
	return out
}

// TimeLog is a recorded work span, created when the stopwatch stops with
// positive elapsed time or edited manually.
type TimeLog struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
	Desc     string `json:"desc"`
}

// Worker is one crew member with a running wage balance.
type Worker struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Type            WorkerType `json:"type"`
	Wage            float64    `json:"wage"`
	IsPresent       bool       `json:"isPresent"`
	AccumulatedWage float64    `json:"accumulatedWage"`
	AdvancePayment  float64    `json:"advancePayment"`
}

// NetPayable is the balance still owed: accumulated wage minus advances.
// Negative values are valid (advances can exceed accrual) and must be
// surfaced as-is. Always derived, never stored.
func (w Worker) NetPayable() float64 {
	return w.AccumulatedWage - w.AdvancePayment
}

// StoreContact is a vendor directory entry.
type StoreContact struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Note     string `json:"note"`
}

// Rental is a piece of rented equipment with a return due date.
// StartDate and ReturnDate are calendar dates in "2006-01-02" form.
type Rental struct {
	ID         int64        `json:"id"`
	Item       string       `json:"item"`
	Provider   string       `json:"provider"`
	StartDate  string       `json:"startDate"`
	ReturnDate string       `json:"returnDate"`
	Price      float64      `json:"price"`
	Deposit    float64      `json:"deposit"`
	Status     RentalStatus `json:"status"`
}

// CompareResult is the last unit-price comparison outcome, kept so the
// winning offer can be promoted into a material. Overwritten by each
// comparison and cleared when inputs become invalid.
type CompareResult struct {
	StoreName   string  `json:"storeName"`
	Price       float64 `json:"price"`
	ProductName string  `json:"productName"`
	Location    string  `json:"location"`
}
