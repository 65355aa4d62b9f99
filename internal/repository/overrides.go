package repository

import (
	"context"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

func (r *Repository) ListOverrides(staffID int64, date string) ([]domain.ScheduleOverride, error) {
	query := `
		SELECT id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, blocked, reason, created_at, version
		FROM schedule_overrides
		WHERE staff_id = $1
	`
	params := []any{staffID}
	if date != "" {
		query += ` AND date = $2`
		params = append(params, date)
	}
	query += ` ORDER BY date, start_time`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := []domain.ScheduleOverride{}
	for rows.Next() {
		ov := domain.ScheduleOverride{StaffID: staffID}
		dst := []any{&ov.ID, &ov.Date, &ov.StartTime, &ov.EndTime, &ov.Blocked, &ov.Reason, &ov.CreatedAt, &ov.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *Repository) CreateOverride(ov *domain.ScheduleOverride) error {
	query := `
		INSERT INTO schedule_overrides (staff_id, date, start_time, end_time, blocked, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{ov.StaffID, ov.Date, ov.StartTime, ov.EndTime, ov.Blocked, ov.Reason}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&ov.ID, &ov.CreatedAt, &ov.Version)
}

// DeleteOverride is scoped to the staff member so one professional's
// override id cannot be used to delete another's.
func (r *Repository) DeleteOverride(staffID, overrideID int64) (bool, error) {
	query := `DELETE FROM schedule_overrides WHERE id = $1 AND staff_id = $2`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, overrideID, staffID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
