package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/metrics"
	"github.com/salonflow/booking/backend/internal/repository"
	"github.com/salonflow/booking/backend/internal/slots"
)

// GetAvailableSlots runs the full pipeline for one staff member and date:
// candidate generation, then conflict resolution against bookings,
// blocked overrides and in-flight holds. All inputs are fetched as a
// snapshot right here; booking creation re-validates transactionally.
func (h *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.errorResponse(w, r, "date is required")
		return
	}
	date, err := slots.ParseDate(dateParam, h.engine.Location())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	serviceIDParam := r.URL.Query().Get("serviceID")
	serviceID, err := strconv.ParseInt(serviceIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid service ID")
		return
	}

	service, err := h.repository.GetServiceByID(serviceID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	overrides, err := h.repository.ListOverrides(staff.ID, dateParam)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	candidates, err := h.engine.GenerateCandidates(slots.Schedule{
		Rules:   staff.Rules,
		Profile: staff.Profile,
	}, date, overrides)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	type availabilityData struct {
		Date           string       `json:"date"`
		StaffID        int64        `json:"staffID"`
		ServiceID      int64        `json:"serviceID"`
		Slots          []slots.Slot `json:"slots"`
		AvailableSlots []string     `json:"availableSlots"`
		Reason         string       `json:"reason,omitempty"`
	}

	if len(candidates.Times) == 0 {
		// Empty with a reason, never an ambiguous empty list.
		metrics.IncAvailabilityQuery()
		h.successResponse(w, r, "no slots for this date", availabilityData{
			Date:           dateParam,
			StaffID:        staff.ID,
			ServiceID:      service.ID,
			Slots:          []slots.Slot{},
			AvailableSlots: []string{},
			Reason:         candidates.Reason,
		})
		return
	}

	// A day earlier and a day later so bookings whose occupied interval
	// crosses midnight are not missed.
	bookings, err := h.repository.ListBookings(repository.BookingQuery{
		StaffID:  staff.ID,
		From:     date.AddDate(0, 0, -1),
		To:       date.AddDate(0, 0, 2),
		Statuses: []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	holds, err := h.activeHolds(r.Context(), staff.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	resolved, err := h.engine.Resolve(candidates.Times, slots.ResolveInput{
		Date:            date,
		ServiceDuration: time.Duration(service.DurationMinutes) * time.Minute,
		Bookings:        bookings,
		Overrides:       overrides,
		Holds:           holds,
		Now:             time.Now(),
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	metrics.IncAvailabilityQuery()
	h.successResponse(w, r, "availability computed", availabilityData{
		Date:           dateParam,
		StaffID:        staff.ID,
		ServiceID:      service.ID,
		Slots:          resolved,
		AvailableSlots: slots.AvailableTimes(resolved),
	})
}
