package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

// BookingQuery enumerates every supported booking filter explicitly. An
// empty Statuses slice means all statuses; zero From/To leave that bound
// open.
type BookingQuery struct {
	StaffID  int64
	From     time.Time
	To       time.Time
	Statuses []domain.BookingStatus
}

const bookingColumns = `
	id, salon_id, staff_id, service_id, customer_name, customer_phone,
	customer_email, start_time, duration_minutes, status, created_at, version
`

func (r *Repository) ListBookings(q BookingQuery) ([]*domain.Booking, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + bookingColumns + ` FROM bookings WHERE staff_id = $1`)

	params := []any{q.StaffID}
	if !q.From.IsZero() {
		params = append(params, q.From)
		fmt.Fprintf(&sb, " AND start_time >= $%d", len(params))
	}
	if !q.To.IsZero() {
		params = append(params, q.To)
		fmt.Fprintf(&sb, " AND start_time < $%d", len(params))
	}
	if len(q.Statuses) > 0 {
		placeholders := make([]string, len(q.Statuses))
		for i, status := range q.Statuses {
			params = append(params, string(status))
			placeholders[i] = fmt.Sprintf("$%d", len(params))
		}
		fmt.Fprintf(&sb, " AND status IN (%s)", strings.Join(placeholders, ", "))
	}
	sb.WriteString(" ORDER BY start_time")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, sb.String(), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		dst := []any{
			&b.ID,
			&b.SalonID,
			&b.StaffID,
			&b.ServiceID,
			&b.CustomerName,
			&b.CustomerPhone,
			&b.CustomerEmail,
			&b.StartTime,
			&b.DurationMinutes,
			&b.Status,
			&b.CreatedAt,
			&b.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListFutureOccupyingBookings is the regeneration coordinator's read:
// every pending or confirmed booking starting at or after now.
func (r *Repository) ListFutureOccupyingBookings(staffID int64, now time.Time) ([]*domain.Booking, error) {
	return r.ListBookings(BookingQuery{
		StaffID:  staffID,
		From:     now,
		Statuses: []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
	})
}

// CreateBooking inserts a booking after re-checking availability inside
// the same transaction. The staff row is locked first so two concurrent
// inserts for the same professional serialize; the overlap exclusion
// constraint on the table is the final guard for anything that slips
// through.
func (r *Repository) CreateBooking(b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `SELECT id FROM staff WHERE id = $1 FOR UPDATE`
	var staffID int64
	if err := tx.QueryRowContext(ctx, query, b.StaffID).Scan(&staffID); err != nil {
		return err
	}

	query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE staff_id = $1
		  AND status IN ('PENDING', 'CONFIRMED')
		  AND start_time < $3
		  AND start_time + make_interval(mins => duration_minutes) > $2
	`
	var conflicting int64
	if err := tx.QueryRowContext(ctx, query, b.StaffID, b.StartTime, b.EndTime()).Scan(&conflicting); err != nil {
		return err
	}
	if conflicting > 0 {
		return ErrSlotTaken
	}

	query = `
		INSERT INTO bookings (salon_id, staff_id, service_id, customer_name, customer_phone, customer_email, start_time, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`
	params := []any{
		b.SalonID,
		b.StaffID,
		b.ServiceID,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		b.StartTime,
		b.DurationMinutes,
		b.Status,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&b.ID, &b.CreatedAt, &b.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetBookingByID(id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var b domain.Booking
	dst := []any{
		&b.ID,
		&b.SalonID,
		&b.StaffID,
		&b.ServiceID,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.CustomerEmail,
		&b.StartTime,
		&b.DurationMinutes,
		&b.Status,
		&b.CreatedAt,
		&b.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *Repository) UpdateBookingStatus(b *domain.Booking) error {
	query := `
		UPDATE bookings
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{b.Status, b.ID, b.Version}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&b.Version)
}
