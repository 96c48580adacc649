package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"github.com/ArjunParadkar/M.A.M.A/config"
	"github.com/ArjunParadkar/M.A.M.A/internal/notification"
	"github.com/ArjunParadkar/M.A.M.A/internal/schedule"
	"github.com/ArjunParadkar/M.A.M.A/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	scheduler *schedule.Scheduler
	pool      *notification.WorkerPool
	cfg       *config.Config
	webpush   *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, pool *notification.WorkerPool, cfg *config.Config, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store: s,
		scheduler: schedule.New(schedule.Options{
			DefaultDailyHours: cfg.Scheduler.DefaultDailyHours,
			WorkdayStartHour:  cfg.Scheduler.WorkdayStartHour,
			TrackCapacity:     cfg.Scheduler.TrackCapacity,
		}),
		pool:    pool,
		cfg:     cfg,
		webpush: webpushOptions,
	}
}
