package slots

import (
	"fmt"
	"slices"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

// Defaults applied when a staff member's working-hours profile is missing
// fields (or missing entirely). An absent lunch window means no lunch
// exclusion.
const (
	DefaultWorkStart   = "09:00"
	DefaultWorkEnd     = "18:00"
	DefaultStepMinutes = 30
)

var defaultWorkDays = []int32{1, 2, 3, 4, 5} // Monday to Friday

const ReasonNotWorking = "professional does not work this day"

// Engine computes slot availability. It holds no mutable state: every
// call is a pure function of the snapshots passed in, the salon location
// and the step size.
type Engine struct {
	loc  *time.Location
	step int // minutes
}

func NewEngine(loc *time.Location, stepMinutes int) *Engine {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	return &Engine{loc: loc, step: stepMinutes}
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

// Schedule is the snapshot of one staff member's recurring availability.
// Discrete rules take precedence; the profile is only consulted when the
// staff member carries no rules at all.
type Schedule struct {
	Rules   []domain.WorkScheduleRule
	Profile *domain.WorkingHoursProfile
}

// Candidates is an ordered set of candidate start times. Reason is set
// when the set is empty for a meaningful cause, so callers can render
// something better than a bare empty list.
type Candidates struct {
	Times  []ClockTime
	Reason string
}

// GenerateCandidates expands a staff schedule into candidate start times
// for one calendar date, before any booking is considered. Overrides that
// mark extra available windows contribute additional candidates; blocked
// overrides are handled later by Resolve.
func (e *Engine) GenerateCandidates(sched Schedule, date time.Time, overrides []domain.ScheduleOverride) (Candidates, error) {
	dow := DayOfWeek(date)

	var times []ClockTime
	var reason string
	var err error

	if len(sched.Rules) > 0 {
		times, err = e.candidatesFromRules(sched.Rules, dow)
		if err != nil {
			return Candidates{}, err
		}
		if len(times) == 0 {
			reason = ReasonNotWorking
		}
	} else {
		times, reason, err = e.candidatesFromProfile(sched.Profile, dow)
		if err != nil {
			return Candidates{}, err
		}
	}

	extra, err := e.candidatesFromOverrides(overrides, date)
	if err != nil {
		return Candidates{}, err
	}
	if len(extra) > 0 {
		times = append(times, extra...)
		reason = ""
	}

	slices.Sort(times)
	times = slices.Compact(times)

	return Candidates{Times: times, Reason: reason}, nil
}

// candidatesFromRules emits one candidate per enabled rule matching the
// day of week. Rules already represent fixed granular slots, so the rule's
// start time is the candidate; its end time is not subdivided.
func (e *Engine) candidatesFromRules(rules []domain.WorkScheduleRule, dow int32) ([]ClockTime, error) {
	var times []ClockTime
	for _, rule := range rules {
		if !rule.Enabled || rule.DayOfWeek != dow {
			continue
		}
		t, err := ParseClock(rule.StartTime)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", rule.ID, err)
		}
		times = append(times, t)
	}
	return times, nil
}

func (e *Engine) candidatesFromProfile(profile *domain.WorkingHoursProfile, dow int32) ([]ClockTime, string, error) {
	if profile == nil {
		profile = &domain.WorkingHoursProfile{}
	}

	workDays := profile.WorkDays
	if len(workDays) == 0 {
		workDays = defaultWorkDays
	}
	if !slices.Contains(workDays, dow) {
		return nil, ReasonNotWorking, nil
	}

	workStart := profile.WorkStart
	if workStart == "" {
		workStart = DefaultWorkStart
	}
	workEnd := profile.WorkEnd
	if workEnd == "" {
		workEnd = DefaultWorkEnd
	}

	start, err := ParseClock(workStart)
	if err != nil {
		return nil, "", fmt.Errorf("work start: %w", err)
	}
	end, err := ParseClock(workEnd)
	if err != nil {
		return nil, "", fmt.Errorf("work end: %w", err)
	}

	var lunchStart, lunchEnd ClockTime
	hasLunch := profile.LunchStart != "" && profile.LunchEnd != ""
	if hasLunch {
		if lunchStart, err = ParseClock(profile.LunchStart); err != nil {
			return nil, "", fmt.Errorf("lunch start: %w", err)
		}
		if lunchEnd, err = ParseClock(profile.LunchEnd); err != nil {
			return nil, "", fmt.Errorf("lunch end: %w", err)
		}
	}

	var times []ClockTime
	for cursor := start; cursor.Add(e.step) <= end; cursor = cursor.Add(e.step) {
		// Steps inside the lunch window are simply absent, not marked
		// unavailable.
		if hasLunch && cursor >= lunchStart && cursor < lunchEnd {
			continue
		}
		times = append(times, cursor)
	}

	return times, "", nil
}

func (e *Engine) candidatesFromOverrides(overrides []domain.ScheduleOverride, date time.Time) ([]ClockTime, error) {
	day := date.Format("2006-01-02")

	var times []ClockTime
	for _, ov := range overrides {
		if ov.Blocked || ov.Date != day {
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
		for cursor := start; cursor.Add(e.step) <= end; cursor = cursor.Add(e.step) {
			times = append(times, cursor)
		}
	}
	return times, nil
}
