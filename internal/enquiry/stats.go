package enquiry

import (
	"context"
	"sort"
	"sync"
	"time"

	"sungraze_backend/internal/model"
)

// Stats counts delivered enquiries per project between digests. Counts live
// in memory only and are lost on restart.
type Stats struct {
	mu     sync.Mutex
	counts map[string]int64
	since  time.Time
	now    func() time.Time
}

type ProjectCount struct {
	Project string
	Count   int64
}

// Digest summarises the enquiries counted in [Since, Until).
type Digest struct {
	Since     time.Time
	Until     time.Time
	Total     int64
	ByProject []ProjectCount // busiest first
}

func NewStats() *Stats {
	return &Stats{counts: make(map[string]int64), since: time.Now(), now: time.Now}
}

// Record counts one delivered enquiry. An empty project name is a general
// enquiry.
func (s *Stats) Record(projectName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[projectName]++
}

// Track wraps next so that successful deliveries are recorded.
func (s *Stats) Track(next LeadSink) LeadSink {
	return SinkFunc(func(ctx context.Context, p model.EnquiryPayload) error {
		if err := next.Deliver(ctx, p); err != nil {
			return err
		}
		s.Record(p.ProjectName)
		return nil
	})
}

// Snapshot returns the current counts without resetting them.
func (s *Stats) Snapshot() Digest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digest()
}

// Drain returns the current counts and starts a new period.
func (s *Stats) Drain() Digest {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.digest()
	s.counts = make(map[string]int64)
	s.since = d.Until
	return d
}

func (s *Stats) digest() Digest {
	d := Digest{Since: s.since, Until: s.now()}
	for project, n := range s.counts {
		d.Total += n
		d.ByProject = append(d.ByProject, ProjectCount{Project: project, Count: n})
	}
	sort.Slice(d.ByProject, func(i, j int) bool {
		a, b := d.ByProject[i], d.ByProject[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Project < b.Project
	})
	return d
}
