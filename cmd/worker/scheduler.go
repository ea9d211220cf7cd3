package main

import (
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/queue"
)

type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *Config) (*asynqScheduler, error) {
	scheduler := queue.NewScheduler(cache.AsynqOpt(cfg.Redis), queue.ReportSchedule{
		Cron:   cfg.Report.Cron,
		Window: cfg.Report.Window,
	})

	if err := scheduler.RegisterJobs(); err != nil {
		return nil, err
	}

	go func() {
		log.Info().Msg("Scheduler starting")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Scheduler failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}, nil
}

func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("Scheduler shutting down")
	s.Scheduler.Shutdown()
}
