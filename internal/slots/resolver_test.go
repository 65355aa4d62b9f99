package slots

import (
	"testing"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clocks(t *testing.T, times ...string) []ClockTime {
	t.Helper()
	out := make([]ClockTime, len(times))
	for i, s := range times {
		c, err := ParseClock(s)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func slotByTime(t *testing.T, resolved []Slot, hhmm string) Slot {
	t.Helper()
	for _, slot := range resolved {
		if slot.Time == hhmm {
			return slot
		}
	}
	t.Fatalf("no slot %s in %v", hhmm, resolved)
	return Slot{}
}

// A confirmed 45-minute booking at 10:00 and a 30-minute
// service being queried. 10:00 and 10:30 collide; 09:30 ends exactly at
// the booking start and 11:00 starts after its 10:45 end, so both stay
// available (half-open boundaries touch without overlapping).
func TestResolveOverlapAgainstLongerBooking(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	booking := &domain.Booking{
		ID:              1,
		StaffID:         7,
		StartTime:       At(date, ClockTime(10*60)),
		DurationMinutes: 45,
		Status:          domain.BookingConfirmed,
	}

	resolved, err := engine.Resolve(clocks(t, "09:30", "10:00", "10:30", "11:00"), ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Bookings:        []*domain.Booking{booking},
		Now:             At(date, 0),
	})
	require.NoError(t, err)
	require.Len(t, resolved, 4)

	assert.True(t, slotByTime(t, resolved, "09:30").Available)
	assert.True(t, slotByTime(t, resolved, "11:00").Available)

	ten := slotByTime(t, resolved, "10:00")
	assert.False(t, ten.Available)
	assert.Equal(t, ReasonOccupied, ten.Reason)

	halfPast := slotByTime(t, resolved, "10:30")
	assert.False(t, halfPast.Available)
	assert.Equal(t, ReasonOccupied, halfPast.Reason)
}

// A long requested service must also conflict when it fully contains a
// shorter existing booking.
func TestResolveSlotContainingShorterBooking(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	booking := &domain.Booking{
		StartTime:       At(date, ClockTime(10*60+30)),
		DurationMinutes: 15,
		Status:          domain.BookingPending,
	}

	resolved, err := engine.Resolve(clocks(t, "10:00"), ResolveInput{
		Date:            date,
		ServiceDuration: 90 * time.Minute,
		Bookings:        []*domain.Booking{booking},
		Now:             At(date, 0),
	})
	require.NoError(t, err)

	assert.False(t, resolved[0].Available)
	assert.Equal(t, ReasonOccupied, resolved[0].Reason)
}

func TestResolveNonOccupyingStatusesNeverBlock(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	for _, status := range []domain.BookingStatus{domain.BookingCancelled, domain.BookingCompleted, domain.BookingNoShow} {
		booking := &domain.Booking{
			StartTime:       At(date, ClockTime(10*60)),
			DurationMinutes: 30,
			Status:          status,
		}

		resolved, err := engine.Resolve(clocks(t, "10:00"), ResolveInput{
			Date:            date,
			ServiceDuration: 30 * time.Minute,
			Bookings:        []*domain.Booking{booking},
			Now:             At(date, 0),
		})
		require.NoError(t, err)
		assert.True(t, resolved[0].Available, "status %s must not occupy", status)
	}
}

// Past slots are disqualified before overlap is even evaluated, so a past
// slot over a booking reports "already past", not "occupied".
func TestResolvePastCutoff(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")
	now := At(date, ClockTime(12*60)) // midday

	booking := &domain.Booking{
		StartTime:       At(date, ClockTime(10*60)),
		DurationMinutes: 30,
		Status:          domain.BookingConfirmed,
	}

	resolved, err := engine.Resolve(clocks(t, "10:00", "11:59", "12:00", "14:00"), ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Bookings:        []*domain.Booking{booking},
		Now:             now,
	})
	require.NoError(t, err)

	assert.Equal(t, ReasonPast, slotByTime(t, resolved, "10:00").Reason)
	assert.Equal(t, ReasonPast, slotByTime(t, resolved, "11:59").Reason)
	// slotStart == now is not before now, so midday itself survives.
	assert.True(t, slotByTime(t, resolved, "12:00").Available)
	assert.True(t, slotByTime(t, resolved, "14:00").Available)
}

func TestResolveWholeDayInThePast(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")
	now := At(mustDate(t, "2025-06-03"), ClockTime(9*60))

	resolved, err := engine.Resolve(clocks(t, "09:00", "13:00", "17:30"), ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Now:             now,
	})
	require.NoError(t, err)

	for _, slot := range resolved {
		assert.False(t, slot.Available)
		assert.Equal(t, ReasonPast, slot.Reason)
	}
}

func TestResolveBlockedOverride(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	overrides := []domain.ScheduleOverride{
		{ID: 1, Date: "2025-06-02", StartTime: "14:00", EndTime: "16:00", Blocked: true, Reason: "dentist"},
		{ID: 2, Date: "2025-06-03", StartTime: "09:00", EndTime: "18:00", Blocked: true},
	}

	resolved, err := engine.Resolve(clocks(t, "13:30", "14:00", "15:30", "16:00"), ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Overrides:       overrides,
		Now:             At(date, 0),
	})
	require.NoError(t, err)

	// 13:30 ends exactly at the block start; 16:00 starts exactly at its
	// end. Both touch without overlapping.
	assert.True(t, slotByTime(t, resolved, "13:30").Available)
	assert.True(t, slotByTime(t, resolved, "16:00").Available)
	assert.Equal(t, ReasonBlocked, slotByTime(t, resolved, "14:00").Reason)
	assert.Equal(t, ReasonBlocked, slotByTime(t, resolved, "15:30").Reason)
}

func TestResolveHoldsOccupy(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	holds := []Interval{{
		Start: At(date, ClockTime(10*60)),
		End:   At(date, ClockTime(10*60+30)),
	}}

	resolved, err := engine.Resolve(clocks(t, "09:30", "10:00", "10:30"), ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Holds:           holds,
		Now:             At(date, 0),
	})
	require.NoError(t, err)

	assert.True(t, slotByTime(t, resolved, "09:30").Available)
	assert.True(t, slotByTime(t, resolved, "10:30").Available)
	assert.Equal(t, ReasonOccupied, slotByTime(t, resolved, "10:00").Reason)
}

// A service whose occupied interval crosses midnight is still plain
// absolute-instant arithmetic: the 23:45 slot of a 60-minute service
// conflicts with a booking at 00:15 the next day.
func TestResolveIntervalCrossingMidnight(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")
	nextDay := mustDate(t, "2025-06-03")

	booking := &domain.Booking{
		StartTime:       At(nextDay, ClockTime(15)),
		DurationMinutes: 30,
		Status:          domain.BookingConfirmed,
	}

	resolved, err := engine.Resolve(clocks(t, "23:45"), ResolveInput{
		Date:            date,
		ServiceDuration: 60 * time.Minute,
		Bookings:        []*domain.Booking{booking},
		Now:             At(date, 0),
	})
	require.NoError(t, err)

	assert.False(t, resolved[0].Available)
	assert.Equal(t, ReasonOccupied, resolved[0].Reason)
}

func TestResolvePreservesCandidateOrder(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	date := mustDate(t, "2025-06-02")

	candidates := clocks(t, "09:00", "09:30", "10:00", "10:30")
	resolved, err := engine.Resolve(candidates, ResolveInput{
		Date:            date,
		ServiceDuration: 30 * time.Minute,
		Now:             At(date, 0),
	})
	require.NoError(t, err)
	require.Len(t, resolved, len(candidates))

	for i, c := range candidates {
		assert.Equal(t, c.String(), resolved[i].Time)
	}

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, AvailableTimes(resolved))
}
