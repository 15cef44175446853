package remix

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"remix-gallery-server/modules/apperror"
)

// Registry - in-memory job registry. Jobs are never persisted and never
// expire; the registry is reset on restart along with the gallery.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

// Create - register a new pending job and return it
func (r *Registry) Create(req Request) Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	job := &Job{
		ID:        uuid.New().String(),
		Status:    StatusPending,
		Phase:     "queued",
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.jobs[job.ID] = job
	return *job
}

// Get - snapshot of a job by id
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// SetPhase - mark a job processing and record its current phase
func (r *Registry) SetPhase(id, phase string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[id]; ok {
		job.Status = StatusProcessing
		job.Phase = phase
		job.UpdatedAt = time.Now()
	}
}

// Complete - mark a job completed with the gallery records it produced
func (r *Registry) Complete(id string, recordIDs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[id]; ok {
		job.Status = StatusCompleted
		job.Phase = "completed"
		job.RecordIDs = recordIDs
		job.Error = nil
		job.UpdatedAt = time.Now()
	}
}

// Fail - mark a job failed with its classified error
func (r *Registry) Fail(id string, detail *apperror.Detail) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[id]; ok {
		job.Status = StatusFailed
		job.Phase = "failed"
		job.Error = detail
		job.UpdatedAt = time.Now()
	}
}

// Counts - job totals per status, for the metrics endpoint
func (r *Registry) Counts() map[Status]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[Status]int{
		StatusPending:    0,
		StatusProcessing: 0,
		StatusCompleted:  0,
		StatusFailed:     0,
	}
	for _, job := range r.jobs {
		counts[job.Status]++
	}
	return counts
}
