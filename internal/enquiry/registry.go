package enquiry

import (
	"sync"
	"time"
)

// Registry keeps the open forms of the HTTP API, keyed by form id.
type Registry struct {
	mu    sync.RWMutex
	forms map[string]*Form
	sink  LeadSink
}

func NewRegistry(sink LeadSink) *Registry {
	return &Registry{forms: make(map[string]*Form), sink: sink}
}

// Open creates and registers a new form.
func (r *Registry) Open(projectName string) *Form {
	f := NewForm(r.sink, projectName)
	r.mu.Lock()
	r.forms[f.ID()] = f
	r.mu.Unlock()
	return f
}

func (r *Registry) Get(id string) (*Form, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.forms[id]
	return f, ok
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.forms, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}

// Sweep drops forms idle for longer than ttl and returns how many went.
func (r *Registry) Sweep(ttl time.Duration) int {
	return r.SweepBefore(time.Now().Add(-ttl))
}

// SweepBefore drops forms last touched before cutoff. Forms with a
// submission in flight are kept.
func (r *Registry) SweepBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, f := range r.forms {
		if f.State() == StateSubmitting {
			continue
		}
		if f.LastTouched().Before(cutoff) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}
