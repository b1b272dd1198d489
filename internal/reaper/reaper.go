package reaper

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// Reaper фоновая задача, которая периодически переводит истекшие
// HOLD-бронирования в статус expired. Запросы чтения и так не видят
// истекшие hold как блокирующие, reaper лишь фиксирует статус в базе.
type Reaper struct {
	cron    *cron.Cron
	service BookingService
	logger  Logger

	interval time.Duration

	// nil, если метрики выключены
	holdsExpired prometheus.Counter
}

func New(service BookingService, logger Logger, intervalMinutes int, holdsExpired prometheus.Counter) *Reaper {
	return &Reaper{
		cron:         cron.New(),
		service:      service,
		logger:       logger,
		interval:     time.Duration(intervalMinutes) * time.Minute,
		holdsExpired: holdsExpired,
	}
}

// Start регистрирует задачу и запускает планировщик
func (r *Reaper) Start() error {
	spec := fmt.Sprintf("@every %s", r.interval)

	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return fmt.Errorf("reaper: failed to schedule job: %w", err)
	}

	r.cron.Start()
	r.logger.Info("Reaper started: interval=%s", r.interval)

	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (r *Reaper) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Reaper stopped")
}

func (r *Reaper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := r.service.ExpireLapsed(ctx)
	if err != nil {
		r.logger.Error("Reaper - Failed to expire lapsed holds: %v", err)
		return
	}

	if expired > 0 {
		r.logger.Info("Reaper - Expired lapsed holds: count=%d", expired)
		if r.holdsExpired != nil {
			r.holdsExpired.Add(float64(expired))
		}
	}
}
