package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 120
	MinAdvanceBookingDays     = 1
	MaxAdvanceBookingDays     = 365
)

// ActiveStatuses are the statuses that occupy a calendar slot.
// Availability and double-booking checks consider only these.
var ActiveStatuses = []BookingStatus{
	StatusUpcoming,
	StatusConfirmed,
}

// InactiveStatuses are the statuses that release the slot.
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// AllStatuses lists every valid booking status.
var AllStatuses = []BookingStatus{
	StatusUpcoming,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
