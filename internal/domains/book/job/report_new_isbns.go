package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	bookService "catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/infrastructure/lock"
	"catalog-backend/internal/shared"
)

const reportLockName = "reportNewIsbns"

type Locker interface {
	TryAcquire(ctx context.Context, name string, atLeast, atMost time.Duration) (lock.Lock, bool, error)
}

type ReportConfig struct {
	Window      time.Duration
	LockAtLeast time.Duration
	LockAtMost  time.Duration
}

// ReportNewIsbnsHandler logs the ISBNs of books created within the window.
// Only the node holding the report lock does the work.
type ReportNewIsbnsHandler struct {
	books  bookService.ServiceInterface
	locker Locker
	config ReportConfig
}

func NewReportNewIsbnsHandler(books bookService.ServiceInterface, locker Locker, config ReportConfig) *ReportNewIsbnsHandler {
	return &ReportNewIsbnsHandler{
		books:  books,
		locker: locker,
		config: config,
	}
}

func (h *ReportNewIsbnsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	window := h.config.Window
	if len(task.Payload()) > 0 {
		var payload shared.ReportNewIsbnsPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal ReportNewIsbns payload")
			return fmt.Errorf("unmarshal payload: %w", err)
		}
		if payload.WindowSeconds > 0 {
			window = time.Duration(payload.WindowSeconds) * time.Second
		}
	}

	l, ok, err := h.locker.TryAcquire(ctx, reportLockName, h.config.LockAtLeast, h.config.LockAtMost)
	if err != nil {
		return fmt.Errorf("acquire report lock: %w", err)
	}
	if !ok {
		log.Info().Str("lock", reportLockName).Msg("Report skipped, lock held by another worker")
		return nil
	}
	defer func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Str("lock", reportLockName).Msg("Failed to release report lock")
		}
	}()

	isbns, err := h.books.RecentIsbns(ctx, window)
	if err != nil {
		log.Error().Err(err).Dur("window", window).Msg("Failed to load new ISBNs")
		return fmt.Errorf("load new isbns: %w", err)
	}

	for _, isbn := range isbns {
		log.Info().Int64("isbn", isbn).Msg("New book ISBN")
	}
	log.Info().
		Int("count", len(isbns)).
		Dur("window", window).
		Msg("New ISBN report completed")

	return nil
}
