package cron

import (
	"Inkstone/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	uploadCleanupJob *job.UploadCleanupJob
}

func NewCronManager(uploadCleanupJob *job.UploadCleanupJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		uploadCleanupJob: uploadCleanupJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.uploadCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
