package domain

import "time"

type Service struct {
	ID              int64     `json:"id"`
	SalonID         int64     `json:"salonID"`
	Name            string    `json:"name"`
	DurationMinutes int32     `json:"durationMinutes"`
	PriceCents      int64     `json:"priceCents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int32     `json:"-"`
}
