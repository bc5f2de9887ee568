package cron

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"sungraze_backend/internal/enquiry"
)

// AddFormSweep periodically drops enquiry forms nobody has touched for ttl.
func (s *Scheduler) AddFormSweep(schedule string, registry *enquiry.Registry, ttl time.Duration) error {
	_, err := s.c.AddFunc(schedule, func() {
		SweepForms(registry, ttl, s.logger)
	})
	if err != nil {
		return fmt.Errorf("schedule form sweep: %w", err)
	}
	return nil
}

func SweepForms(registry *enquiry.Registry, ttl time.Duration, logger *zap.Logger) int {
	removed := registry.Sweep(ttl)
	if removed > 0 {
		logger.Info("idle enquiry forms removed", zap.Int("removed", removed), zap.Int("open", registry.Len()))
	}
	return removed
}
