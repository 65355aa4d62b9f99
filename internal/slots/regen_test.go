package slots

import (
	"testing"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRegeneration(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	monday := mustDate(t, "2025-06-02")
	tuesday := mustDate(t, "2025-06-03")

	newRules := []domain.WorkScheduleRule{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30", Enabled: true},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "09:30", Enabled: true},
		// Disabled rules never rescue a booking.
		{DayOfWeek: 2, StartTime: "15:00", EndTime: "15:30", Enabled: false},
	}

	bookings := []*domain.Booking{
		{ID: 1, StartTime: At(monday, ClockTime(10*60)), DurationMinutes: 30, Status: domain.BookingConfirmed, CustomerName: "Ana"},
		{ID: 2, StartTime: At(tuesday, ClockTime(15*60)), DurationMinutes: 30, Status: domain.BookingPending, CustomerName: "Bruno"},
	}

	check := engine.CheckRegeneration(newRules, bookings)

	require.Len(t, check.Bookings, 2)
	assert.Equal(t, 2, check.BookingsCount)
	assert.Equal(t, 1, check.ConflictsCount)

	kept := check.Bookings[0]
	assert.Equal(t, int64(1), kept.BookingID)
	assert.False(t, kept.WillHaveConflict)
	assert.Equal(t, "2025-06-02", kept.Date)
	assert.Equal(t, "10:00", kept.Time)
	assert.Equal(t, int32(1), kept.DayOfWeek)

	lost := check.Bookings[1]
	assert.Equal(t, int64(2), lost.BookingID)
	assert.True(t, lost.WillHaveConflict)
	assert.Equal(t, "15:00", lost.Time)
}

func TestCheckRegenerationNoBookings(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)

	check := engine.CheckRegeneration([]domain.WorkScheduleRule{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30", Enabled: true},
	}, nil)

	assert.Zero(t, check.BookingsCount)
	assert.Zero(t, check.ConflictsCount)
	assert.Empty(t, check.Bookings)
}

// The rule match is evaluated on the salon wall clock, not on the UTC
// representation of the booking instant. A 10:00 local booking stored as
// 13:00 UTC must match a 10:00 rule.
func TestCheckRegenerationUsesSalonWallClock(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	monday := mustDate(t, "2025-06-02")

	booking := &domain.Booking{
		ID:              1,
		StartTime:       At(monday, ClockTime(10*60)).UTC(),
		DurationMinutes: 30,
		Status:          domain.BookingConfirmed,
	}

	check := engine.CheckRegeneration([]domain.WorkScheduleRule{
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30", Enabled: true},
	}, []*domain.Booking{booking})

	require.Equal(t, 1, check.BookingsCount)
	assert.Zero(t, check.ConflictsCount)
	assert.Equal(t, "10:00", check.Bookings[0].Time)
}

func TestCheckRegenerationToleratesSecondsSuffix(t *testing.T) {
	engine := NewEngine(saoPaulo, 30)
	monday := mustDate(t, "2025-06-02")

	booking := &domain.Booking{
		ID:              1,
		StartTime:       At(monday, ClockTime(10*60)),
		DurationMinutes: 30,
		Status:          domain.BookingConfirmed,
	}

	check := engine.CheckRegeneration([]domain.WorkScheduleRule{
		{DayOfWeek: 1, StartTime: "10:00:00", EndTime: "10:30:00", Enabled: true},
	}, []*domain.Booking{booking})

	assert.Zero(t, check.ConflictsCount)
}
