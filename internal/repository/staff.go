package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

// GetStaffByID loads the staff row together with its recurring rules and
// working-hours profile, the full snapshot the slot engine consumes.
func (r *Repository) GetStaffByID(id int64) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.salon_id,
			s.full_name,
			s.email,
			s.is_active,
			s.work_start,
			s.work_end,
			s.lunch_start,
			s.lunch_end,
			s.created_at,
			s.version,
			r.id,
			r.day_of_week,
			r.start_time,
			r.end_time,
			r.enabled,
			r.created_at
		FROM staff s
		LEFT JOIN work_schedule_rules r ON s.id = r.staff_id
		WHERE s.id = $1
		ORDER BY r.day_of_week, r.start_time
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := &domain.Staff{
		ID:    id,
		Rules: make([]domain.WorkScheduleRule, 0),
	}
	var workStart, workEnd, lunchStart, lunchEnd sql.NullString
	found := false

	for rows.Next() {
		var row struct {
			SalonID   int64
			FullName  string
			Email     string
			IsActive  bool
			CreatedAt time.Time
			Version   int32

			RuleID        sql.NullInt64
			DayOfWeek     sql.NullInt32
			StartTime     sql.NullString
			EndTime       sql.NullString
			Enabled       sql.NullBool
			RuleCreatedAt sql.NullTime
		}

		dst := []any{
			&row.SalonID,
			&row.FullName,
			&row.Email,
			&row.IsActive,
			&workStart,
			&workEnd,
			&lunchStart,
			&lunchEnd,
			&row.CreatedAt,
			&row.Version,
			&row.RuleID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.Enabled,
			&row.RuleCreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			staff.SalonID = row.SalonID
			staff.FullName = row.FullName
			staff.Email = row.Email
			staff.IsActive = row.IsActive
			staff.CreatedAt = row.CreatedAt
			staff.Version = row.Version
			found = true
		}

		// A null rule id means this staff member has no recurring rules.
		if !row.RuleID.Valid {
			continue
		}

		staff.Rules = append(staff.Rules, domain.WorkScheduleRule{
			ID:        row.RuleID.Int64,
			StaffID:   id,
			DayOfWeek: row.DayOfWeek.Int32,
			StartTime: row.StartTime.String,
			EndTime:   row.EndTime.String,
			Enabled:   row.Enabled.Bool,
			CreatedAt: row.RuleCreatedAt.Time,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}

	// The profile is present when any of its columns is set or the staff
	// member has explicit work days.
	workDays, err := r.getStaffWorkDays(ctx, id)
	if err != nil {
		return nil, err
	}
	if workStart.Valid || workEnd.Valid || len(workDays) > 0 {
		staff.Profile = &domain.WorkingHoursProfile{
			WorkStart:  workStart.String,
			WorkEnd:    workEnd.String,
			LunchStart: lunchStart.String,
			LunchEnd:   lunchEnd.String,
			WorkDays:   workDays,
		}
	}

	return staff, nil
}

func (r *Repository) getStaffWorkDays(ctx context.Context, staffID int64) ([]int32, error) {
	query := `SELECT day FROM staff_work_days WHERE staff_id = $1 ORDER BY day`

	rows, err := r.dbpool.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]int32, 0, 7)
	for rows.Next() {
		var day int32
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (r *Repository) CreateStaff(staff *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO staff (salon_id, full_name, email, is_active, work_start, work_end, lunch_start, lunch_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	var workStart, workEnd, lunchStart, lunchEnd sql.NullString
	if staff.Profile != nil {
		workStart = nullableString(staff.Profile.WorkStart)
		workEnd = nullableString(staff.Profile.WorkEnd)
		lunchStart = nullableString(staff.Profile.LunchStart)
		lunchEnd = nullableString(staff.Profile.LunchEnd)
	}

	params := []any{staff.SalonID, staff.FullName, staff.Email, staff.IsActive, workStart, workEnd, lunchStart, lunchEnd}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&staff.ID, &staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	if staff.Profile != nil {
		for _, day := range staff.Profile.WorkDays {
			query = `INSERT INTO staff_work_days (staff_id, day) VALUES ($1, $2)`
			if _, err := tx.ExecContext(ctx, query, staff.ID, day); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
