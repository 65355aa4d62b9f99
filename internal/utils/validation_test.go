package utils

import (
	"testing"

	"github.com/salonflow/booking/backend/internal/domain"
)

func TestValidateScheduleRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   []domain.WorkScheduleRule
		wantErr bool
	}{
		{
			name: "valid set",
			rules: []domain.WorkScheduleRule{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:30"},
				{DayOfWeek: 6, StartTime: "10:00", EndTime: "11:00"},
			},
		},
		{
			name:    "day of week too large",
			rules:   []domain.WorkScheduleRule{{DayOfWeek: 7, StartTime: "09:00", EndTime: "09:30"}},
			wantErr: true,
		},
		{
			name:    "negative day of week",
			rules:   []domain.WorkScheduleRule{{DayOfWeek: -1, StartTime: "09:00", EndTime: "09:30"}},
			wantErr: true,
		},
		{
			name:    "end equals start",
			rules:   []domain.WorkScheduleRule{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
			wantErr: true,
		},
		{
			name:    "end before start",
			rules:   []domain.WorkScheduleRule{{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"}},
			wantErr: true,
		},
		{
			name:    "garbage time",
			rules:   []domain.WorkScheduleRule{{DayOfWeek: 1, StartTime: "morning", EndTime: "10:00"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheduleRules(tt.rules)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScheduleRules() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWorkingHoursProfile(t *testing.T) {
	valid := &domain.WorkingHoursProfile{
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
		WorkDays:   []int32{1, 2, 3, 4, 5},
	}
	if err := ValidateWorkingHoursProfile(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateWorkingHoursProfile(nil); err != nil {
		t.Errorf("nil profile must be valid, got %v", err)
	}

	lonelyLunch := &domain.WorkingHoursProfile{WorkStart: "09:00", WorkEnd: "18:00", LunchStart: "12:00"}
	if err := ValidateWorkingHoursProfile(lonelyLunch); err == nil {
		t.Error("expected error for lunch start without lunch end")
	}

	badDay := &domain.WorkingHoursProfile{WorkDays: []int32{8}}
	if err := ValidateWorkingHoursProfile(badDay); err == nil {
		t.Error("expected error for out-of-range work day")
	}
}
