package sitemaster

import (
	"time"

	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// rentalDateLayout is the calendar form of rental start and return dates.
const rentalDateLayout = "2006-01-02"

// dueSoonWindowDays is the alert window before a return date.
const dueSoonWindowDays = 2

// Urgency classifies how pressing a rental's return date is.
type Urgency string

const (
	UrgencyReturned Urgency = "returned"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due-today"
	UrgencyDueSoon  Urgency = "due-soon"
	UrgencyNormal   Urgency = "normal"
)

// Classification is the due-date urgency of one rental. Days counts days
// late for overdue rentals and days left otherwise; it is zero for
// due-today and returned.
type Classification struct {
	Urgency Urgency
	Days    int
}

// RentalInput carries the fields for registering rented equipment.
type RentalInput struct {
	Item       string
	Provider   string
	StartDate  string
	ReturnDate string
	Price      float64
	Deposit    float64
}

// AddRental registers a piece of rented equipment as active.
func (s *Store) AddRental(in RentalInput) (types.Rental, error) {
	item := validation.CleanText(in.Item)
	if item == "" {
		return types.Rental{}, errRequired("item")
	}
	returnDate := validation.CleanText(in.ReturnDate)
	if returnDate == "" {
		return types.Rental{}, errRequired("returnDate")
	}
	if _, err := time.Parse(rentalDateLayout, returnDate); err != nil {
		return types.Rental{}, &ValidationError{Field: "returnDate", Reason: "must be a calendar date (YYYY-MM-DD)"}
	}

	var created types.Rental
	err := s.mutate(func(doc *types.Document) error {
		created = types.Rental{
			ID:         s.nextID(),
			Item:       item,
			Provider:   validation.CleanText(in.Provider),
			StartDate:  validation.CleanText(in.StartDate),
			ReturnDate: returnDate,
			Price:      validation.NonNegative(in.Price),
			Deposit:    validation.NonNegative(in.Deposit),
			Status:     types.RentalActive,
		}
		doc.Rentals = append(doc.Rentals, created)
		return nil
	})
	return created, err
}

// UpdateRental merges the patch into the rental with the given id.
func (s *Store) UpdateRental(id int64, patch types.RentalPatch) (types.Rental, error) {
	var updated types.Rental
	err := s.mutate(func(doc *types.Document) error {
		i := indexRental(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		r := &doc.Rentals[i]
		if patch.Item != nil {
			item := validation.CleanText(*patch.Item)
			if item == "" {
				return errRequired("item")
			}
			r.Item = item
		}
		if patch.Provider != nil {
			r.Provider = validation.CleanText(*patch.Provider)
		}
		if patch.StartDate != nil {
			r.StartDate = validation.CleanText(*patch.StartDate)
		}
		if patch.ReturnDate != nil {
			returnDate := validation.CleanText(*patch.ReturnDate)
			if _, err := time.Parse(rentalDateLayout, returnDate); err != nil {
				return &ValidationError{Field: "returnDate", Reason: "must be a calendar date (YYYY-MM-DD)"}
			}
			r.ReturnDate = returnDate
		}
		if patch.Price != nil {
			r.Price = validation.NonNegative(*patch.Price)
		}
		if patch.Deposit != nil {
			r.Deposit = validation.NonNegative(*patch.Deposit)
		}
		updated = *r
		return nil
	})
	return updated, err
}

// RemoveRental deletes the rental with the given id. A no-op if not present.
func (s *Store) RemoveRental(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.Rentals[:0]
		for _, r := range doc.Rentals {
			if r.ID != id {
				out = append(out, r)
			}
		}
		doc.Rentals = out
		return nil
	})
}

// ToggleRentalStatus flips a rental between active and returned. No other
// transition exists.
func (s *Store) ToggleRentalStatus(id int64) (types.Rental, error) {
	var updated types.Rental
	err := s.mutate(func(doc *types.Document) error {
		i := indexRental(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		doc.Rentals[i].Status = doc.Rentals[i].Status.Toggle()
		updated = doc.Rentals[i]
		return nil
	})
	return updated, err
}

// ListRentals returns the rentals in insertion order.
func (s *Store) ListRentals() []types.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Rental, len(s.doc.Rentals))
	copy(out, s.doc.Rentals)
	return out
}

// Classify determines the urgency of a rental as a pure function of its
// return date, its status and today's date. Both dates are truncated to
// midnight before subtraction so partial-day differences never cause an
// off-by-one.
func Classify(r types.Rental, today time.Time) Classification {
	if r.Status == types.RentalReturned {
		return Classification{Urgency: UrgencyReturned}
	}
	ret, err := time.Parse(rentalDateLayout, r.ReturnDate)
	if err != nil {
		// Free-text or missing date: nothing to alert on.
		return Classification{Urgency: UrgencyNormal}
	}
	days := int(dateOnly(ret).Sub(dateOnly(today)) / (24 * time.Hour))
	switch {
	case days < 0:
		return Classification{Urgency: UrgencyOverdue, Days: -days}
	case days == 0:
		return Classification{Urgency: UrgencyDueToday}
	case days <= dueSoonWindowDays:
		return Classification{Urgency: UrgencyDueSoon, Days: days}
	default:
		return Classification{Urgency: UrgencyNormal, Days: days}
	}
}

// RentalAlert pairs a rental with its urgency for the dashboard banner.
type RentalAlert struct {
	Rental types.Rental
	Classification
}

// HomeAlerts returns the non-returned rentals whose return date is within
// the due-soon window or already past, in the collection's insertion order.
func (s *Store) HomeAlerts() []RentalAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.now()
	alerts := []RentalAlert{}
	for _, r := range s.doc.Rentals {
		c := Classify(r, today)
		switch c.Urgency {
		case UrgencyOverdue, UrgencyDueToday, UrgencyDueSoon:
			alerts = append(alerts, RentalAlert{Rental: r, Classification: c})
		}
	}
	return alerts
}

// dateOnly truncates to midnight UTC of the same calendar day, making the
// day difference immune to time zones and daylight shifts.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func indexRental(doc *types.Document, id int64) int {
	for i, r := range doc.Rentals {
		if r.ID == id {
			return i
		}
	}
	return -1
}
