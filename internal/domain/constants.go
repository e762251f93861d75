package domain

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "01/02/2006" // mm/dd/yyyy
)

// Default business-day template
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 17
	LunchBreakHour   = 12
)

// Business validation constants
const (
	MaxClientNoteLength = 500
)

// AllStatuses every status the backend may report
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
	StatusExpired,
}

// NonBlockingStatuses never block a slot, neither for the client nor for the aesthetician
var NonBlockingStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
	StatusExpired,
}

// ResourceBlockingStatuses block the aesthetician's slot
var ResourceBlockingStatuses = []BookingStatus{
	StatusApproved,
	StatusCompleted,
}

// StatusChangeTargets statuses an aesthetician may set explicitly
var StatusChangeTargets = []BookingStatus{
	StatusApproved,
	StatusRejected,
	StatusCompleted,
}

const unknownStatusRank = 99

var statusOrder = map[BookingStatus]int{
	StatusPending:   1,
	StatusApproved:  2,
	StatusRejected:  3,
	StatusCancelled: 4,
	StatusCompleted: 5,
	StatusExpired:   6,
}

var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}
