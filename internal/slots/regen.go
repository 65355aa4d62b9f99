package slots

import (
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

// AffectedBooking is one future booking evaluated against a proposed rule
// set, annotated with whether the replacement would leave it without a
// matching slot.
type AffectedBooking struct {
	BookingID        int64     `json:"bookingID"`
	StartTime        time.Time `json:"startTime"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	DayOfWeek        int32     `json:"dayOfWeek"`
	CustomerName     string    `json:"customerName"`
	Status           string    `json:"status"`
	WillHaveConflict bool      `json:"willHaveConflict"`
}

// RegenerationCheck is the dry-run report for a schedule replacement.
type RegenerationCheck struct {
	Bookings       []AffectedBooking `json:"bookings"`
	BookingsCount  int               `json:"bookingsCount"`
	ConflictsCount int               `json:"conflictsCount"`
}

// CheckRegeneration evaluates every future occupying booking against the
// proposed rules. A booking keeps its slot only when some enabled rule has
// the same day of week and the same start time, compared on the salon's
// wall clock. Nothing is mutated here; the transactional replacement lives
// in the repository.
func (e *Engine) CheckRegeneration(newRules []domain.WorkScheduleRule, futureBookings []*domain.Booking) RegenerationCheck {
	check := RegenerationCheck{
		Bookings: make([]AffectedBooking, 0, len(futureBookings)),
	}

	for _, b := range futureBookings {
		local := b.StartTime.In(e.loc)
		dow := DayOfWeek(local)
		hhmm := local.Format("15:04")

		matched := false
		for _, rule := range newRules {
			if rule.Enabled && rule.DayOfWeek == dow && sameClock(rule.StartTime, hhmm) {
				matched = true
				break
			}
		}

		check.Bookings = append(check.Bookings, AffectedBooking{
			BookingID:        b.ID,
			StartTime:        b.StartTime,
			Date:             local.Format("2006-01-02"),
			Time:             hhmm,
			DayOfWeek:        dow,
			CustomerName:     b.CustomerName,
			Status:           string(b.Status),
			WillHaveConflict: !matched,
		})
		if !matched {
			check.ConflictsCount++
		}
	}

	check.BookingsCount = len(check.Bookings)
	return check
}

// sameClock compares two wall-clock strings tolerating "HH:MM" vs "HH:MM:SS".
func sameClock(a, b string) bool {
	ca, errA := ParseClock(a)
	cb, errB := ParseClock(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}
