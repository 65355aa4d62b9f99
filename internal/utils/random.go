package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/salonflow/booking/backend/internal/domain"
)

var firstNames = []string{
	"Ana", "Bruno", "Camila", "Diego", "Elisa", "Felipe", "Gabriela", "Hugo",
	"Isabela", "João", "Karina", "Lucas", "Mariana", "Nicolas", "Olivia",
	"Paulo", "Rafaela", "Thiago", "Valentina", "William",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Costa", "Pereira", "Almeida",
	"Ferreira", "Rodrigues", "Gomes", "Martins", "Barbosa", "Ribeiro",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomPhone() string {
	return fmt.Sprintf("+55 11 9%04d-%04d", rand.Intn(10000), rand.Intn(10000))
}

var serviceCatalog = []struct {
	name     string
	duration int32
	price    int64
}{
	{"Haircut", 30, 6000},
	{"Beard trim", 30, 4000},
	{"Haircut and beard", 60, 9000},
	{"Hair coloring", 120, 25000},
	{"Blowout", 45, 8000},
	{"Manicure", 45, 5000},
	{"Hair treatment", 90, 18000},
}

func GenerateRandomService(salonID int64) *domain.Service {
	entry := serviceCatalog[rand.Intn(len(serviceCatalog))]
	return &domain.Service{
		SalonID:         salonID,
		Name:            entry.name,
		DurationMinutes: entry.duration,
		PriceCents:      entry.price,
		IsActive:        true,
	}
}

func GenerateRandomStaff(salonID int64) *domain.Staff {
	fullName := GenerateRandomFullName()
	return &domain.Staff{
		SalonID:  salonID,
		FullName: fullName,
		Email:    fmt.Sprintf("staff%04d@salonflow.example", rand.Intn(10000)),
		IsActive: true,
		Profile: &domain.WorkingHoursProfile{
			WorkStart:  "09:00",
			WorkEnd:    "18:00",
			LunchStart: "12:00",
			LunchEnd:   "13:00",
			WorkDays:   []int32{1, 2, 3, 4, 5},
		},
	}
}

// GenerateRandomScheduleRules produces one 30-minute slot rule per hour of
// a workday, the shape the dashboard's bulk editor submits.
func GenerateRandomScheduleRules(staffID int64) []domain.WorkScheduleRule {
	days := []int32{1, 2, 3, 4, 5}
	rules := make([]domain.WorkScheduleRule, 0, len(days)*8)

	for _, day := range days {
		for hour := 9; hour < 18; hour++ {
			if hour == 12 {
				// lunch hour
				continue
			}
			rules = append(rules, domain.WorkScheduleRule{
				StaffID:   staffID,
				DayOfWeek: day,
				StartTime: fmt.Sprintf("%02d:00", hour),
				EndTime:   fmt.Sprintf("%02d:30", hour),
				Enabled:   true,
			})
		}
	}

	return rules
}

// GenerateRandomBooking places a booking on a random half-hour slot within
// the next two weeks of workdays.
func GenerateRandomBooking(salonID int64, staff *domain.Staff, service *domain.Service, loc *time.Location) *domain.Booking {
	now := time.Now().In(loc)

	day := now.AddDate(0, 0, rand.Intn(14)+1)
	hour := rand.Intn(8) + 9 // 09:00 .. 16:00
	minute := 30 * rand.Intn(2)
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)

	statuses := []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed, domain.BookingConfirmed}

	return &domain.Booking{
		SalonID:         salonID,
		StaffID:         staff.ID,
		ServiceID:       service.ID,
		CustomerName:    GenerateRandomFullName(),
		CustomerPhone:   GenerateRandomPhone(),
		StartTime:       start.UTC(),
		DurationMinutes: service.DurationMinutes,
		Status:          statuses[rand.Intn(len(statuses))],
	}
}
