// Package seed fills an empty database with a demo salon: a handful of
// professionals, the service catalog and a spread of future bookings.
package seed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
	"github.com/salonflow/booking/backend/internal/repository"
	"github.com/salonflow/booking/backend/internal/utils"
)

const demoSalonID = 1

// SeedDemoData inserts staff, services and random future bookings. It is
// not idempotent and is meant for a fresh database only.
func SeedDemoData(repo *repository.Repository, loc *time.Location, staffCount, bookingsPerStaff int) {
	services := make([]*domain.Service, 0, staffCount)
	seen := map[string]bool{}
	for len(services) < 4 {
		svc := utils.GenerateRandomService(demoSalonID)
		if seen[svc.Name] {
			continue
		}
		seen[svc.Name] = true

		if err := repo.CreateService(svc); err != nil {
			slog.Error("unable to insert service", slog.String("error", err.Error()))
			continue
		}
		services = append(services, svc)
	}
	slog.Info("services inserted", slog.Int("count", len(services)))

	inserted := 0
	for i := 0; i < staffCount; i++ {
		staff := utils.GenerateRandomStaff(demoSalonID)
		if err := repo.CreateStaff(staff); err != nil {
			slog.Error("unable to insert staff", slog.String("error", err.Error()))
			continue
		}

		// Half the demo staff use explicit per-slot rules instead of the
		// working-hours profile, so both schedule shapes show up.
		if i%2 == 0 {
			rules := utils.GenerateRandomScheduleRules(staff.ID)
			if _, err := repo.ReplaceRecurringRules(staff.ID, rules); err != nil {
				slog.Error("unable to insert schedule rules", slog.String("error", err.Error()))
			}
		}

		booked := 0
		for attempts := 0; booked < bookingsPerStaff && attempts < bookingsPerStaff*4; attempts++ {
			svc := services[booked%len(services)]
			b := utils.GenerateRandomBooking(demoSalonID, staff, svc, loc)
			if err := repo.CreateBooking(b); err != nil {
				if errors.Is(err, repository.ErrSlotTaken) {
					continue
				}
				slog.Error("unable to insert booking", slog.String("error", err.Error()))
				continue
			}
			booked++
		}

		slog.Info("staff inserted", slog.String("name", staff.FullName), slog.Int("bookings", booked))
		inserted++
	}

	slog.Info("demo data seeded", slog.Int("staff", inserted))
}
