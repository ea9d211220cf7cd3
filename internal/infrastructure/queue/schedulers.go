package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared"
)

// Registrar is the part of asynq.Scheduler used to register periodic tasks
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

type ReportSchedule struct {
	Cron   string
	Window time.Duration
}

type Scheduler struct {
	scheduler *asynq.Scheduler
	report    ReportSchedule
}

func NewScheduler(redis asynq.RedisConnOpt, report ReportSchedule) *Scheduler {
	scheduler := asynq.NewScheduler(
		redis,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		report:    report,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return RegisterReportNewIsbns(s.scheduler, s.report)
}

// ================================================
// Report ISBNs of books created in the last window
// ================================================
func RegisterReportNewIsbns(r Registrar, schedule ReportSchedule) error {
	payload, err := json.Marshal(shared.ReportNewIsbnsPayload{
		WindowSeconds: int64(schedule.Window / time.Second),
	})
	if err != nil {
		return fmt.Errorf("marshal report payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeReportNewIsbns, payload)

	entryID, err := r.Register(
		schedule.Cron,
		task,
		asynq.Queue(shared.QueueReport),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		log.Error().Err(err).Str("cron", schedule.Cron).Msg("Failed to register ReportNewIsbns job")
		return fmt.Errorf("register report job: %w", err)
	}

	log.Info().
		Str("entry_id", entryID).
		Str("cron", schedule.Cron).
		Dur("window", schedule.Window).
		Msg("Registered ReportNewIsbns")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
