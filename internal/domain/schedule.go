package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// DayHours represents the salon's working window on one weekday
// A closed day has IsOpen=false; Open/Close are undefined in that case
type DayHours struct {
	IsOpen bool
	Open   types.TimeString
	Close  types.TimeString
}

// WeekSchedule represents the salon's business hours per weekday
// Loaded from configuration at startup and read-only afterwards
type WeekSchedule struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// HoursFor returns the working window for the given weekday
func (w WeekSchedule) HoursFor(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DayHours{IsOpen: false}
	}
}

// IsOpenOn returns true if the salon is open on the given weekday
func (w WeekSchedule) IsOpenOn(weekday time.Weekday) bool {
	return w.HoursFor(weekday).IsOpen
}

// IsWithinHours returns true if the time falls inside the day's working
// window. Half-open interval [open, close): closing time is already outside
func (w WeekSchedule) IsWithinHours(t types.TimeString, weekday time.Weekday) bool {
	hours := w.HoursFor(weekday)
	if !hours.IsOpen {
		return false
	}
	return !t.IsBefore(hours.Open) && t.IsBefore(hours.Close)
}

// DefaultWeekSchedule returns the salon's standard schedule
// Used when no schedule is overridden in configuration
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Monday:    DayHours{IsOpen: true, Open: "09:00", Close: "19:00"},
		Tuesday:   DayHours{IsOpen: true, Open: "10:00", Close: "20:00"},
		Wednesday: DayHours{IsOpen: true, Open: "09:00", Close: "19:00"},
		Thursday:  DayHours{IsOpen: true, Open: "10:00", Close: "20:00"},
		Friday:    DayHours{IsOpen: true, Open: "09:00", Close: "18:30"},
		Saturday:  DayHours{IsOpen: false},
		Sunday:    DayHours{IsOpen: false},
	}
}
