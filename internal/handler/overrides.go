package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/slots"
	"github.com/salonflow/booking/backend/internal/utils"
)

func (h *Handler) GetOverrides(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := slots.ParseDate(date, h.engine.Location()); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}

	overrides, err := h.repository.ListOverrides(staff.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "overrides fetched", overrides)
}

func (h *Handler) CreateOverride(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	var req struct {
		Date      string `json:"date" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
		Blocked   bool   `json:"blocked"`
		Reason    string `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := slots.ParseDate(req.Date, h.engine.Location()); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ov := &domain.ScheduleOverride{
		StaffID:   staff.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Blocked:   req.Blocked,
		Reason:    req.Reason,
	}

	if err := utils.ValidateOverrideTimes(ov); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateOverride(ov); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "override created", ov)
}

func (h *Handler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	overrideIDParam := chi.URLParam(r, "overrideID")
	overrideID, err := strconv.ParseInt(overrideIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid override ID")
		return
	}

	found, err := h.repository.DeleteOverride(staff.ID, overrideID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !found {
		h.errorResponse(w, r, "override not found")
		return
	}

	h.successResponse(w, r, "override deleted", nil)
}
