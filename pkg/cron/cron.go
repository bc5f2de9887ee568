package cron

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the background jobs of the API process.
type Scheduler struct {
	c      *cron.Cron
	logger *zap.Logger
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		c:      cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	s.c.Start()
	s.logger.Info("cron started", zap.Int("jobs", len(s.c.Entries())))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}
