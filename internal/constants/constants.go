package constants

const (
	AppName            = "bookctl"
	Version            = "v0.3.1"
	DefaultKeyringUser = "api-token"
	DefaultConfigDir   = "~/.config/bookctl"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ScheduledAtFormat is the timestamp format the booking backend expects
	// for the scheduled_at field. Seconds are always zero.
	ScheduledAtFormat = "2006-01-02T15:04:00"

	// Booking defaults fixed by the backend contract
	ServiceType        = "consultation"
	BookingDurationMin = 30

	// Backend endpoints
	AvailabilityPath = "/api/v1/booking/calendar/availability"
	BookingsPath     = "/api/v1/booking/bookings"

	// Week window defaults
	DefaultWeekWindow = 4
	DaysPerWeek       = 7

	// Settings defaults
	DefaultLocale   = "it"
	DefaultTimezone = "Europe/Rome"

	// Flag keys stored via the storage provider
	FlagTourDone = "tour_booking_done"

	// Booking log
	DefaultHistoryLimit = 20
)
