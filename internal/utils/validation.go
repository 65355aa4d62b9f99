package utils

import (
	"fmt"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/slots"
)

// ValidateScheduleRules rejects a rule set before anything touches the
// database: malformed times, end not strictly after start, day of week
// outside 0..6.
func ValidateScheduleRules(rules []domain.WorkScheduleRule) error {
	for i, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("slot %d: day of week must be between 0 and 6", i+1)
		}

		start, err := slots.ParseClock(rule.StartTime)
		if err != nil {
			return fmt.Errorf("slot %d: invalid start time", i+1)
		}
		end, err := slots.ParseClock(rule.EndTime)
		if err != nil {
			return fmt.Errorf("slot %d: invalid end time", i+1)
		}
		if end <= start {
			return fmt.Errorf("slot %d: end time must be after start time", i+1)
		}
	}

	return nil
}

func ValidateOverrideTimes(ov *domain.ScheduleOverride) error {
	start, err := slots.ParseClock(ov.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time")
	}
	end, err := slots.ParseClock(ov.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time")
	}
	if end <= start {
		return fmt.Errorf("end time must be after start time")
	}

	return nil
}

func ValidateWorkingHoursProfile(p *domain.WorkingHoursProfile) error {
	if p == nil {
		return nil
	}

	for _, day := range p.WorkDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("work day %d is out of range", day)
		}
	}

	if p.WorkStart != "" || p.WorkEnd != "" {
		start, err := slots.ParseClock(p.WorkStart)
		if err != nil {
			return fmt.Errorf("invalid work start time")
		}
		end, err := slots.ParseClock(p.WorkEnd)
		if err != nil {
			return fmt.Errorf("invalid work end time")
		}
		if end <= start {
			return fmt.Errorf("work end time must be after work start time")
		}
	}

	hasLunchStart := p.LunchStart != ""
	hasLunchEnd := p.LunchEnd != ""
	if hasLunchStart != hasLunchEnd {
		return fmt.Errorf("lunch start and lunch end must be set together")
	}
	if hasLunchStart {
		start, err := slots.ParseClock(p.LunchStart)
		if err != nil {
			return fmt.Errorf("invalid lunch start time")
		}
		end, err := slots.ParseClock(p.LunchEnd)
		if err != nil {
			return fmt.Errorf("invalid lunch end time")
		}
		if end <= start {
			return fmt.Errorf("lunch end time must be after lunch start time")
		}
	}

	return nil
}
