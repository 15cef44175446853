package gallery

import (
	"strings"
	"sync"
)

// Store - in-memory ordered list of video records, newest first. There is no
// persistence: the gallery lives and dies with the process.
type Store struct {
	mu      sync.RWMutex
	records []VideoRecord
}

func NewStore() *Store {
	return &Store{}
}

// Prepend - add a single record at the front of the gallery
func (s *Store) Prepend(rec VideoRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]VideoRecord{rec}, s.records...)
}

// PrependBatch - add a batch at the front, preserving the batch's own order.
// A two-variation remix ends up as [ (1/2), (2/2), ...older records ].
func (s *Store) PrependBatch(recs []VideoRecord) {
	if len(recs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]VideoRecord, 0, len(recs)+len(s.records))
	merged = append(merged, recs...)
	merged = append(merged, s.records...)
	s.records = merged
}

// Append - add a record at the back, used for the built-in seed gallery
func (s *Store) Append(rec VideoRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Get - look up a record by id
func (s *Store) Get(id string) (VideoRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return VideoRecord{}, false
}

// All - snapshot of the full gallery, newest first
func (s *Store) All() []VideoRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]VideoRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Filter - records whose title or description contains q, case-insensitively.
// An empty query returns the full gallery.
func (s *Store) Filter(q string) []VideoRecord {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]VideoRecord, 0, len(s.records))
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Title), q) ||
			strings.Contains(strings.ToLower(rec.Description), q) {
			out = append(out, rec)
		}
	}
	return out
}

// Len - current gallery size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
