package domain

import "time"

// ClosurePeriod represents a date range during which the salon takes no
// bookings regardless of business hours (vacation, renovation, holidays)
// Invariant: StartDate <= EndDate; both bounds inclusive
type ClosurePeriod struct {
	ID        int64
	StartDate time.Time // локальная полночь первого закрытого дня
	EndDate   time.Time // локальная полночь последнего закрытого дня (включительно)
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the given day (local midnight) falls inside
// the closure period, bounds included
func (c *ClosurePeriod) Contains(day time.Time) bool {
	return !day.Before(c.StartDate) && !day.After(c.EndDate)
}

// Overlaps returns true if two closure periods share at least one day
func (c *ClosurePeriod) Overlaps(other *ClosurePeriod) bool {
	return !c.StartDate.After(other.EndDate) && !other.StartDate.After(c.EndDate)
}
