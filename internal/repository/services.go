package repository

import (
	"context"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

func (r *Repository) GetServiceByID(id int64) (*domain.Service, error) {
	query := `
		SELECT salon_id, name, duration_minutes, price_cents, is_active, created_at, version
		FROM services WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	service := &domain.Service{
		ID: id,
	}

	dst := []any{&service.SalonID, &service.Name, &service.DurationMinutes, &service.PriceCents, &service.IsActive, &service.CreatedAt, &service.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return service, nil
}

func (r *Repository) GetAllServices() ([]*domain.Service, error) {
	query := `
		SELECT id, salon_id, name, duration_minutes, price_cents, is_active, created_at, version
		FROM services
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*domain.Service{}
	for rows.Next() {
		var service domain.Service
		dst := []any{
			&service.ID,
			&service.SalonID,
			&service.Name,
			&service.DurationMinutes,
			&service.PriceCents,
			&service.IsActive,
			&service.CreatedAt,
			&service.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *Repository) CreateService(service *domain.Service) error {
	query := `
		INSERT INTO services (salon_id, name, duration_minutes, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{service.SalonID, service.Name, service.DurationMinutes, service.PriceCents, service.IsActive}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&service.ID, &service.CreatedAt, &service.Version)
}
