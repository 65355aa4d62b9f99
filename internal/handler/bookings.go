package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/metrics"
	"github.com/salonflow/booking/backend/internal/repository"
	"github.com/salonflow/booking/backend/internal/slots"
)

// CreateBooking accepts a date plus wall-clock time, re-validates the
// slot inside the insert transaction and books it. The availability the
// client saw is a snapshot; this is the authoritative check.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID       int64  `json:"staffID" validate:"required"`
		ServiceID     int64  `json:"serviceID" validate:"required"`
		Date          string `json:"date" validate:"required"`
		Time          string `json:"time" validate:"required"`
		CustomerName  string `json:"customerName" validate:"required"`
		CustomerPhone string `json:"customerPhone" validate:"required"`
		CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := slots.ParseDate(req.Date, h.engine.Location())
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	clock, err := slots.ParseClock(req.Time)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	slotStart := slots.At(date, clock)
	if slotStart.Before(time.Now()) {
		h.errorResponse(w, r, "slot is already past")
		return
	}

	staff, err := h.repository.GetStaffByID(req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "professional not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	service, err := h.repository.GetServiceByID(req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// The requested time must be one of the staff member's candidate
	// slots for that date, not an arbitrary instant.
	overrides, err := h.repository.ListOverrides(staff.ID, req.Date)
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
	if !slices.Contains(candidates.Times, clock) {
		h.errorResponse(w, r, "professional does not offer this slot")
		return
	}
	resolved, err := h.engine.Resolve([]slots.ClockTime{clock}, slots.ResolveInput{
		Date:            date,
		ServiceDuration: time.Duration(service.DurationMinutes) * time.Minute,
		Overrides:       overrides,
		Now:             time.Now(),
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !resolved[0].Available {
		h.errorResponse(w, r, "slot is "+resolved[0].Reason)
		return
	}

	booking := &domain.Booking{
		SalonID:         staff.SalonID,
		StaffID:         staff.ID,
		ServiceID:       service.ID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		StartTime:       slotStart.UTC(),
		DurationMinutes: service.DurationMinutes,
		Status:          domain.BookingConfirmed,
	}

	if err := h.repository.CreateBooking(booking); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			metrics.IncBookingConflict()
			h.conflictResponse(w, r, "slot was just taken, pick another", nil)
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "bookings_no_overlap_excl":
				metrics.IncBookingConflict()
				h.conflictResponse(w, r, "slot was just taken, pick another", nil)
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	metrics.IncBookingCreated(string(booking.Status))

	if booking.CustomerEmail != "" {
		h.publishNotification(r.Context(), domain.NotificationMessage{
			Type: domain.NotificationBookingConfirmed,
			To:   booking.CustomerEmail,
			Data: domain.BookingNotificationData{
				CustomerName: booking.CustomerName,
				StaffName:    staff.FullName,
				ServiceName:  service.Name,
				Date:         req.Date,
				Time:         clock.String(),
			},
		})
	}

	h.successResponse(w, r, "booking created", booking)
}

func (h *Handler) GetStaffBookings(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	query := repository.BookingQuery{StaffID: staff.ID}

	loc := h.engine.Location()
	if from := r.URL.Query().Get("from"); from != "" {
		date, err := slots.ParseDate(from, loc)
		if err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		query.From = date
	}
	if to := r.URL.Query().Get("to"); to != "" {
		date, err := slots.ParseDate(to, loc)
		if err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		// inclusive end date
		query.To = date.AddDate(0, 0, 1)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query.Statuses = []domain.BookingStatus{domain.BookingStatus(status)}
	}

	bookings, err := h.repository.ListBookings(query)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "bookings fetched", bookings)
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingIDParam := chi.URLParam(r, "id")
	bookingID, err := strconv.ParseInt(bookingIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid booking ID")
		return
	}

	var req struct {
		Status domain.BookingStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED NO_SHOW"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	booking, err := h.repository.GetBookingByID(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "booking not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	previous := booking.Status
	booking.Status = req.Status

	if err := h.repository.UpdateBookingStatus(booking); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Status == domain.BookingCancelled && previous.Occupies() && booking.CustomerEmail != "" {
		local := booking.StartTime.In(h.engine.Location())
		h.publishNotification(r.Context(), domain.NotificationMessage{
			Type: domain.NotificationBookingCancelled,
			To:   booking.CustomerEmail,
			Data: domain.BookingNotificationData{
				CustomerName: booking.CustomerName,
				Date:         local.Format("2006-01-02"),
				Time:         local.Format("15:04"),
			},
		})
	}

	h.successResponse(w, r, "booking status updated", booking)
}

// publishNotification is fire and forget: delivery problems must not fail
// the booking that triggered them.
func (h *Handler) publishNotification(ctx context.Context, msg domain.NotificationMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		slog.Error("could not marshal notification", "type", msg.Type, "error", err)
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notificationChannel.PublishWithContext(
		publishCtx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("could not publish notification", "type", msg.Type, "error", err)
		return
	}

	metrics.IncNotificationPublished(msg.Type)
}
