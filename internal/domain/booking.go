package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

// Occupies reports whether a booking in this status blocks its slot.
// Only pending and confirmed bookings count; completed, cancelled and
// no-show ones never do.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID              int64         `json:"id"`
	SalonID         int64         `json:"salonID"`
	StaffID         int64         `json:"staffID"`
	ServiceID       int64         `json:"serviceID"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	StartTime       time.Time     `json:"startTime"` // absolute instant, stored in UTC
	DurationMinutes int32         `json:"durationMinutes"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	Version         int32         `json:"-"`
}

// EndTime is the exclusive end of the occupied interval
// [StartTime, StartTime+Duration).
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}
