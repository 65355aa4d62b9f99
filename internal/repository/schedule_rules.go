package repository

import (
	"context"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

// ReplaceRecurringRules swaps a staff member's entire recurring rule set
// in one transaction: delete everything, insert the replacements. Either
// both phases commit or neither does, so a concurrent reader never sees a
// half-replaced schedule. Bookings are never touched here.
func (r *Repository) ReplaceRecurringRules(staffID int64, rules []domain.WorkScheduleRule) (deleted int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM work_schedule_rules WHERE staff_id = $1`
	result, err := tx.ExecContext(ctx, query, staffID)
	if err != nil {
		return 0, err
	}
	deleted, err = result.RowsAffected()
	if err != nil {
		return 0, err
	}

	for i := range rules {
		query = `
			INSERT INTO work_schedule_rules (staff_id, day_of_week, start_time, end_time, enabled)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, version
		`
		params := []any{staffID, rules[i].DayOfWeek, rules[i].StartTime, rules[i].EndTime, rules[i].Enabled}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&rules[i].ID, &rules[i].CreatedAt, &rules[i].Version); err != nil {
			return 0, err
		}
		rules[i].StaffID = staffID
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return deleted, nil
}
