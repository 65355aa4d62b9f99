package domain

import (
	"time"
)

// WorkingHoursProfile is the procedural alternative to discrete schedule
// rules: a staff member either carries rules or a profile (or both, in
// which case rules win for the days they cover).
type WorkingHoursProfile struct {
	WorkStart  string  `json:"workStart"`            // "HH:MM"
	WorkEnd    string  `json:"workEnd"`              // "HH:MM"
	LunchStart string  `json:"lunchStart,omitempty"` // empty means no lunch window
	LunchEnd   string  `json:"lunchEnd,omitempty"`
	WorkDays   []int32 `json:"workDays"` // 0 = Sunday
}

type Staff struct {
	ID        int64                `json:"id"`
	SalonID   int64                `json:"salonID"`
	FullName  string               `json:"fullName"`
	Email     string               `json:"email"`
	IsActive  bool                 `json:"isActive"`
	Profile   *WorkingHoursProfile `json:"profile,omitempty"`
	Rules     []WorkScheduleRule   `json:"rules"`
	CreatedAt time.Time            `json:"createdAt"`
	Version   int32                `json:"-"`
}
