package domain

// BookingStatus represents the status of a booking as reported by the backend
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusExpired   BookingStatus = "expired"
)

// PersonRef is a denormalized snapshot of a client or aesthetician attached to a booking
type PersonRef struct {
	ID        int64
	FirstName string
	LastName  string
}

// FullName returns "First Last", trimmed when one part is missing
func (p *PersonRef) FullName() string {
	if p == nil {
		return ""
	}
	return joinName(p.FirstName, p.LastName)
}

// ServiceRef is a denormalized snapshot of a service attached to a booking
type ServiceRef struct {
	ID   int64
	Name string
}

// Booking is a read-only projection of a backend booking.
// AppointmentDate and AppointmentTime are kept exactly as transmitted; compare them only
// through NormalizeDate and NormalizeTime.
type Booking struct {
	ID              int64
	AppointmentDate string
	AppointmentTime string
	Status          BookingStatus
	ClientNote      *string

	Client       *PersonRef
	Service      *ServiceRef
	Aesthetician *PersonRef
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// BlocksActor reports whether the booking prevents its owner from booking the same slot again.
// Every status except cancelled, rejected and expired blocks.
func (b *Booking) BlocksActor() bool {
	for _, s := range NonBlockingStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// BlocksResource reports whether the booking occupies its aesthetician's slot.
// Only approved and completed bookings do.
func (b *Booking) BlocksResource() bool {
	for _, s := range ResourceBlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsOn reports whether the booking falls on the canonical date (YYYY-MM-DD).
// Malformed dates never match.
func (b *Booking) IsOn(canonicalDate string) bool {
	date, ok := NormalizeDate(b.AppointmentDate)
	return ok && date == canonicalDate
}

// SlotValue returns the normalized HH:MM time of the booking
func (b *Booking) SlotValue() (string, bool) {
	return NormalizeTime(b.AppointmentTime)
}

// CanBeCancelledByClient returns true while the booking is still pending
func (b *Booking) CanBeCancelledByClient() bool {
	return b.Status == StatusPending
}

// StatusRank orders statuses for the bookings list; unknown statuses go last
func (b *Booking) StatusRank() int {
	if rank, ok := statusOrder[b.Status]; ok {
		return rank
	}
	return unknownStatusRank
}

// CanTransition reports whether an aesthetician may move a booking from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingsFilter narrows a bookings query; nil fields are not sent
type BookingsFilter struct {
	Status         *BookingStatus
	AestheticianID *int64
	DateFrom       *string // YYYY-MM-DD
	DateTo         *string // YYYY-MM-DD
}
