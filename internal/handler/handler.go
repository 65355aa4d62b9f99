package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/salonflow/booking/backend/internal/config"
	"github.com/salonflow/booking/backend/internal/metrics"
	"github.com/salonflow/booking/backend/internal/repository"
	"github.com/salonflow/booking/backend/internal/slots"
)

type Handler struct {
	validate            *validator.Validate
	config              *config.Config
	repository          *repository.Repository
	engine              *slots.Engine
	translator          ut.Translator
	notificationChannel *amqp.Channel
	redisClient         *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, engine *slots.Engine, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:            validate,
		config:              cfg,
		repository:          repo,
		engine:              engine,
		translator:          trans,
		notificationChannel: notifyCh,
		redisClient:         rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	metrics.Register()
	h.Mux.Handle("/metrics", promhttp.Handler())

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// Client-facing booking surface, no login required.
	h.Mux.Group(func(r chi.Router) {
		r.Route("/staff/{id}", func(r chi.Router) {
			r.Use(h.staffInfo)
			r.Get("/available-slots", h.GetAvailableSlots)
			r.Post("/holds", h.CreateHold)
		})
		r.Post("/bookings", h.CreateBooking)
		r.Get("/services", h.GetAllServices)
	})

	// Dashboard surface, admin login required.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/admin/staff/{id}", func(r chi.Router) {
			r.Use(h.staffInfo)
			r.Get("/schedule", h.GetSchedule)
			r.Put("/schedule", h.RegenerateSchedule)
			r.Get("/bookings", h.GetStaffBookings)
			r.Route("/overrides", func(r chi.Router) {
				r.Get("/", h.GetOverrides)
				r.Post("/", h.CreateOverride)
				r.Delete("/{overrideID}", h.DeleteOverride)
			})
		})
		r.Patch("/admin/bookings/{id}/status", h.UpdateBookingStatus)
	})
}
