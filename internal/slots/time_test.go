package slots

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "09:00", want: 9 * 60},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "13:30:00", want: 13*60 + 30},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "9h30", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClockTimeString(t *testing.T) {
	if got := ClockTime(9*60 + 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want %q", got, "09:05")
	}
	if got := ClockTime(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

// A date parsed in a UTC-3 location must keep its calendar weekday even
// though the same instant in UTC already belongs to the next day. This is
// the offset-drift case that produced phantom day shifts in production
// systems that mixed UTC and local calendars.
func TestParseDateKeepsLocalWeekday(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	date, err := ParseDate("2025-06-02", loc) // a Monday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := DayOfWeek(date); got != 1 {
		t.Errorf("DayOfWeek = %d, want 1 (Monday)", got)
	}

	// Midnight local is 03:00 UTC of the same calendar day; converting to
	// UTC before extracting the weekday would still be Monday here, so
	// check the evening case too: 22:00 local is 01:00 UTC Tuesday.
	evening := At(date, ClockTime(22*60))
	if got := DayOfWeek(evening.UTC()); got != 2 {
		t.Fatalf("sanity: 22:00 local should be Tuesday in UTC, got %d", got)
	}
	if got := DayOfWeek(evening); got != 1 {
		t.Errorf("local weekday of 22:00 slot = %d, want 1 (Monday)", got)
	}
}

func TestAtAppliesLocationOffset(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date, _ := ParseDate("2025-06-02", loc)

	slot := At(date, ClockTime(10*60))

	want := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)
	if !slot.UTC().Equal(want) {
		t.Errorf("At() = %v, want %v", slot.UTC(), want)
	}
}

func TestIntervalOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	mk := func(startMin, endMin int) Interval {
		return Interval{
			Start: base.Add(time.Duration(startMin) * time.Minute),
			End:   base.Add(time.Duration(endMin) * time.Minute),
		}
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "identical", a: mk(0, 30), b: mk(0, 30), want: true},
		{name: "partial", a: mk(0, 30), b: mk(15, 45), want: true},
		{name: "contained", a: mk(0, 60), b: mk(15, 30), want: true},
		{name: "touching end to start", a: mk(0, 30), b: mk(30, 60), want: false},
		{name: "touching start to end", a: mk(30, 60), b: mk(0, 30), want: false},
		{name: "disjoint", a: mk(0, 30), b: mk(45, 60), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}
