package domain

import "time"

// WorkScheduleRule is one recurring weekly slot for a staff member. A rule
// already represents a fixed granular slot, not an open interval to
// subdivide: its start time is the slot's start time.
type WorkScheduleRule struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffID"`
	DayOfWeek int32     `json:"dayOfWeek"` // 0 = Sunday
	StartTime string    `json:"startTime"` // "HH:MM", salon wall clock
	EndTime   string    `json:"endTime"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// ScheduleOverride is a one-off exception for a single calendar date:
// either a blocked window or an extra available window.
type ScheduleOverride struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffID"`
	Date      string    `json:"date"`      // "YYYY-MM-DD", salon calendar
	StartTime string    `json:"startTime"` // "HH:MM"
	EndTime   string    `json:"endTime"`
	Blocked   bool      `json:"blocked"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
