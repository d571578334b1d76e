package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes     = 15
	DefaultBufferMinutes           = 0
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 120
	MinServiceDuration     = 15
	MaxServiceDuration     = 480 // 8 hours
	MinBufferMinutes       = 0
	MaxBufferMinutes       = 120
	MinAdvanceBookingDays  = 0
	MaxAdvanceBookingDays  = 365 // 1 year
	MinNoticeMinutes       = 0
	MaxNoticeMinutes       = 10080 // 1 week
	MaxNotesLength         = 500
	MaxReasonLength        = 500
	MaxPhoneLength         = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов записей, не занимающих слот
// Используется при фильтрации для подсчёта доступности
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов записей, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
