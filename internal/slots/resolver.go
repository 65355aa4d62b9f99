package slots

import (
	"fmt"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

const (
	ReasonPast     = "already past"
	ReasonOccupied = "occupied"
	ReasonBlocked  = "blocked"
)

// Slot is one resolved candidate: a wall-clock start time plus whether a
// booking of the requested duration may start there.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ResolveInput carries everything Resolve needs, fetched by the caller
// immediately before the call. Staleness between fetch and use is the
// caller's concern; booking creation re-validates inside its own
// transaction.
type ResolveInput struct {
	Date            time.Time // midnight in the salon location
	ServiceDuration time.Duration
	Bookings        []*domain.Booking
	Overrides       []domain.ScheduleOverride
	Holds           []Interval // in-flight holds, already absolute
	Now             time.Time
}

// Resolve marks each candidate available or not. Candidate order is
// preserved. Past slots are disqualified unconditionally before any
// overlap is evaluated.
func (e *Engine) Resolve(candidates []ClockTime, in ResolveInput) ([]Slot, error) {
	blocked, err := e.blockedIntervals(in.Overrides, in.Date)
	if err != nil {
		return nil, err
	}

	resolved := make([]Slot, 0, len(candidates))
	for _, t := range candidates {
		slotStart := At(in.Date, t)
		slotEnd := slotStart.Add(in.ServiceDuration)
		slot := Slot{Time: t.String(), Available: true}

		switch {
		case slotStart.Before(in.Now):
			slot.Available = false
			slot.Reason = ReasonPast
		case e.overlapsBlocked(slotStart, slotEnd, blocked):
			slot.Available = false
			slot.Reason = ReasonBlocked
		case e.overlapsBooking(slotStart, slotEnd, in.Bookings) || e.overlapsHold(slotStart, slotEnd, in.Holds):
			slot.Available = false
			slot.Reason = ReasonOccupied
		}

		resolved = append(resolved, slot)
	}

	return resolved, nil
}

// overlapsBooking applies the half-open intersection test against every
// occupying booking. The three clauses cover the slot starting inside the
// booking, ending inside it, and fully containing it, so the test holds
// whether the requested service is shorter, longer or equal to the
// blocking booking.
func (e *Engine) overlapsBooking(slotStart, slotEnd time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.Status.Occupies() {
			continue
		}
		bStart, bEnd := b.StartTime, b.EndTime()

		startsInside := !slotStart.Before(bStart) && slotStart.Before(bEnd)
		endsInside := slotEnd.After(bStart) && !slotEnd.After(bEnd)
		contains := !slotStart.After(bStart) && !slotEnd.Before(bEnd)

		if startsInside || endsInside || contains {
			return true
		}
	}
	return false
}

func (e *Engine) overlapsHold(slotStart, slotEnd time.Time, holds []Interval) bool {
	slot := Interval{Start: slotStart, End: slotEnd}
	for _, hold := range holds {
		if slot.Overlaps(hold) {
			return true
		}
	}
	return false
}

func (e *Engine) overlapsBlocked(slotStart, slotEnd time.Time, blocked []Interval) bool {
	slot := Interval{Start: slotStart, End: slotEnd}
	for _, iv := range blocked {
		if slot.Overlaps(iv) {
			return true
		}
	}
	return false
}

func (e *Engine) blockedIntervals(overrides []domain.ScheduleOverride, date time.Time) ([]Interval, error) {
	day := date.Format("2006-01-02")

	var intervals []Interval
	for _, ov := range overrides {
		if !ov.Blocked || ov.Date != day {
			continue
		}
		start, err := ParseClock(ov.StartTime)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", ov.ID, err)
		}
		end, err := ParseClock(ov.EndTime)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", ov.ID, err)
		}
		intervals = append(intervals, Interval{Start: At(date, start), End: At(date, end)})
	}
	return intervals, nil
}

// AvailableTimes extracts just the available start times, in order.
func AvailableTimes(resolved []Slot) []string {
	times := make([]string, 0, len(resolved))
	for _, slot := range resolved {
		if slot.Available {
			times = append(times, slot.Time)
		}
	}
	return times
}
