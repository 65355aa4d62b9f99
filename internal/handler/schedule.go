package handler

import (
	"net/http"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/metrics"
	"github.com/salonflow/booking/backend/internal/utils"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	h.successResponse(w, r, "schedule fetched", struct {
		Rules   []domain.WorkScheduleRule   `json:"rules"`
		Profile *domain.WorkingHoursProfile `json:"profile,omitempty"`
	}{
		Rules:   staff.Rules,
		Profile: staff.Profile,
	})
}

// RegenerateSchedule replaces a staff member's whole recurring rule set.
// Without force it is a dry run whenever future occupying bookings exist:
// the caller gets the full conflict report and must resubmit with
// force=true to proceed. Bookings themselves are never deleted or
// modified here.
func (h *Handler) RegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	var req struct {
		Slots []struct {
			DayOfWeek int32  `json:"dayOfWeek" validate:"gte=0,lte=6"`
			StartTime string `json:"startTime" validate:"required"`
			EndTime   string `json:"endTime" validate:"required"`
		} `json:"slots" validate:"required,dive"`
		Force bool `json:"force"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newRules := make([]domain.WorkScheduleRule, 0, len(req.Slots))
	for _, slot := range req.Slots {
		newRules = append(newRules, domain.WorkScheduleRule{
			StaffID:   staff.ID,
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Enabled:   true,
		})
	}

	if err := utils.ValidateScheduleRules(newRules); err != nil {
		h.badRequest(w, r, err)
		return
	}

	futureBookings, err := h.repository.ListFutureOccupyingBookings(staff.ID, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	check := h.engine.CheckRegeneration(newRules, futureBookings)

	if check.BookingsCount > 0 && !req.Force {
		metrics.IncRegeneration("awaiting_confirmation")
		h.conflictResponse(w, r, "future bookings exist, confirmation required", check)
		return
	}

	deleted, err := h.repository.ReplaceRecurringRules(staff.ID, newRules)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	metrics.IncRegeneration("applied")
	h.successResponse(w, r, "schedule regenerated", struct {
		Deleted          int64 `json:"deleted"`
		Created          int   `json:"created"`
		BookingsRetained int   `json:"bookingsRetained"`
	}{
		Deleted:          deleted,
		Created:          len(newRules),
		BookingsRetained: check.BookingsCount,
	})
}
