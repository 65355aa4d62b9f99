package repository

import (
	"database/sql"
	"errors"

	"github.com/salonflow/booking/backend/internal/config"
)

// ErrSlotTaken is returned by CreateBooking when the transactional
// re-check finds the requested interval already occupied.
var ErrSlotTaken = errors.New("slot already taken")

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
