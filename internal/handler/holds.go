package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/slots"
)

// CreateHold reserves a slot for a short window while the customer fills
// in their details. Holds live only in Redis and expire on their own; a
// hold is advisory, the booking insert remains the authoritative check.
func (h *Handler) CreateHold(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	var req struct {
		Date            string `json:"date" validate:"required"`
		Time            string `json:"time" validate:"required"`
		DurationMinutes int32  `json:"durationMinutes" validate:"required,gt=0"`
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

	key := holdKey(staff.ID, slotStart)
	ttl := time.Duration(h.config.Salon.HoldTTL) * time.Second

	ok, err := h.redisClient.SetNX(r.Context(), key, req.DurationMinutes, ttl).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, "slot is already held by another customer")
		return
	}

	h.successResponse(w, r, "slot held", map[string]any{
		"expiresInSeconds": h.config.Salon.HoldTTL,
	})
}

func holdKey(staffID int64, slotStart time.Time) string {
	return fmt.Sprintf("hold:%d:%d", staffID, slotStart.Unix())
}

// activeHolds scans the staff member's hold keys and rebuilds each one as
// an absolute interval. The key carries the start instant, the value the
// duration in minutes.
func (h *Handler) activeHolds(ctx context.Context, staffID int64) ([]slots.Interval, error) {
	var holds []slots.Interval

	iter := h.redisClient.Scan(ctx, 0, fmt.Sprintf("hold:%d:*", staffID), 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		parts := strings.Split(key, ":")
		startUnix, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
		if err != nil {
			continue
		}

		minutes, err := h.redisClient.Get(ctx, key).Int64()
		if err != nil {
			// expired between SCAN and GET
			continue
		}

		start := time.Unix(startUnix, 0)
		holds = append(holds, slots.Interval{
			Start: start,
			End:   start.Add(time.Duration(minutes) * time.Minute),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return holds, nil
}
