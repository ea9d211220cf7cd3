package main

import (
	"github.com/hibiken/asynq"

	bookJob "catalog-backend/internal/domains/book/job"
	"catalog-backend/internal/shared"
	"catalog-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	reportNewIsbns *bookJob.ReportNewIsbnsHandler
}

func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	return &HandlerRegistry{
		reportNewIsbns: bookJob.NewReportNewIsbnsHandler(c.BookService, c.Locker, bookJob.ReportConfig{
			Window:      cfg.Report.Window,
			LockAtLeast: cfg.Report.LockAtLeast,
			LockAtMost:  cfg.Report.LockAtMost,
		}),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeReportNewIsbns, h.reportNewIsbns.ProcessTask)
}
