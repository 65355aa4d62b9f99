package slots

import (
	"testing"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := ParseDate(s, saoPaulo)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return date
}

func timeStrings(c Candidates) []string {
	out := make([]string, len(c.Times))
	for i, t := range c.Times {
		out[i] = t.String()
	}
	return out
}

func TestGenerateCandidatesFromProfile(t *testing.T) {
	monday := "2025-06-02"
	sunday := "2025-06-01"

	tests := []struct {
		name       string
		profile    *domain.WorkingHoursProfile
		date       string
		wantFirst  string
		wantLast   string
		wantCount  int
		wantReason string
		excluded   []string
	}{
		{
			name: "full week day with lunch",
			profile: &domain.WorkingHoursProfile{
				WorkStart:  "09:00",
				WorkEnd:    "18:00",
				LunchStart: "12:00",
				LunchEnd:   "13:00",
				WorkDays:   []int32{1, 2, 3, 4, 5},
			},
			date:      monday,
			wantFirst: "09:00",
			wantLast:  "17:30",
			wantCount: 16, // 18 half-hour steps minus the two lunch steps
			excluded:  []string{"12:00", "12:30"},
		},
		{
			name: "no lunch window means no exclusion",
			profile: &domain.WorkingHoursProfile{
				WorkStart: "10:00",
				WorkEnd:   "12:00",
				WorkDays:  []int32{1},
			},
			date:      monday,
			wantFirst: "10:00",
			wantLast:  "11:30",
			wantCount: 4,
		},
		{
			name: "non-working day yields empty with reason",
			profile: &domain.WorkingHoursProfile{
				WorkStart: "09:00",
				WorkEnd:   "18:00",
				WorkDays:  []int32{1, 2, 3, 4, 5},
			},
			date:       sunday,
			wantCount:  0,
			wantReason: ReasonNotWorking,
		},
		{
			name:      "nil profile falls back to defaults",
			profile:   nil,
			date:      monday,
			wantFirst: "09:00",
			wantLast:  "17:30",
			wantCount: 18,
		},
		{
			name:       "nil profile defaults exclude weekends",
			profile:    nil,
			date:       sunday,
			wantCount:  0,
			wantReason: ReasonNotWorking,
		},
	}

	engine := NewEngine(saoPaulo, 30)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.GenerateCandidates(Schedule{Profile: tt.profile}, mustDate(t, tt.date), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got.Times) != tt.wantCount {
				t.Fatalf("got %d candidates %v, want %d", len(got.Times), timeStrings(got), tt.wantCount)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.wantCount == 0 {
				return
			}

			times := timeStrings(got)
			if times[0] != tt.wantFirst {
				t.Errorf("first candidate = %s, want %s", times[0], tt.wantFirst)
			}
			if times[len(times)-1] != tt.wantLast {
				t.Errorf("last candidate = %s, want %s", times[len(times)-1], tt.wantLast)
			}
			for _, excluded := range tt.excluded {
				for _, tm := range times {
					if tm == excluded {
						t.Errorf("candidate %s should have been excluded", tm)
					}
				}
			}
		})
	}
}

func TestGenerateCandidatesFromRules(t *testing.T) {
	rules := []domain.WorkScheduleRule{
		{ID: 1, DayOfWeek: 1, StartTime: "14:00", EndTime: "14:30", Enabled: true},
		{ID: 2, DayOfWeek: 1, StartTime: "09:00", EndTime: "09:30", Enabled: true},
		{ID: 3, DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30", Enabled: false},
		{ID: 4, DayOfWeek: 2, StartTime: "11:00", EndTime: "11:30", Enabled: true},
	}

	engine := NewEngine(saoPaulo, 30)

	got, err := engine.GenerateCandidates(Schedule{Rules: rules}, mustDate(t, "2025-06-02"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One candidate per enabled Monday rule, sorted ascending; the disabled
	// rule and the Tuesday rule contribute nothing.
	want := []string{"09:00", "14:00"}
	times := timeStrings(got)
	if len(times) != len(want) {
		t.Fatalf("got %v, want %v", times, want)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("candidate[%d] = %s, want %s", i, times[i], want[i])
		}
	}
}

func TestGenerateCandidatesRulesNoneForDay(t *testing.T) {
	rules := []domain.WorkScheduleRule{
		{ID: 1, DayOfWeek: 2, StartTime: "09:00", EndTime: "09:30", Enabled: true},
	}

	engine := NewEngine(saoPaulo, 30)

	got, err := engine.GenerateCandidates(Schedule{Rules: rules}, mustDate(t, "2025-06-02"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Times) != 0 {
		t.Fatalf("expected no candidates, got %v", timeStrings(got))
	}
	if got.Reason != ReasonNotWorking {
		t.Errorf("reason = %q, want %q", got.Reason, ReasonNotWorking)
	}
}

func TestGenerateCandidatesAvailableOverride(t *testing.T) {
	profile := &domain.WorkingHoursProfile{
		WorkStart: "09:00",
		WorkEnd:   "12:00",
		WorkDays:  []int32{1, 2, 3, 4, 5},
	}
	overrides := []domain.ScheduleOverride{
		// Extra evening window on the queried Monday.
		{ID: 1, Date: "2025-06-02", StartTime: "19:00", EndTime: "20:00", Blocked: false},
		// Different date, must not leak in.
		{ID: 2, Date: "2025-06-03", StartTime: "07:00", EndTime: "08:00", Blocked: false},
		// Blocked overrides are the resolver's business, not the generator's.
		{ID: 3, Date: "2025-06-02", StartTime: "09:00", EndTime: "10:00", Blocked: true},
	}

	engine := NewEngine(saoPaulo, 30)

	got, err := engine.GenerateCandidates(Schedule{Profile: profile}, mustDate(t, "2025-06-02"), overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "19:00", "19:30"}
	times := timeStrings(got)
	if len(times) != len(want) {
		t.Fatalf("got %v, want %v", times, want)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("candidate[%d] = %s, want %s", i, times[i], want[i])
		}
	}
}

func TestGenerateCandidatesDefaultStep(t *testing.T) {
	// Step <= 0 falls back to 30 minutes.
	engine := NewEngine(saoPaulo, 0)

	got, err := engine.GenerateCandidates(Schedule{Profile: &domain.WorkingHoursProfile{
		WorkStart: "09:00",
		WorkEnd:   "10:00",
		WorkDays:  []int32{1},
	}}, mustDate(t, "2025-06-02"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Times) != 2 {
		t.Errorf("got %v, want [09:00 09:30]", timeStrings(got))
	}
}
