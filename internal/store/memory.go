package store

import (
	"sync"

	"github.com/google/uuid"

	"wardview/pkg"
)

// MemoryStore holds the patient snapshot for the running session. Reads hand
// out copies so callers can treat the result as immutable; Add appends with
// no persistence of its own (the optional Postgres write-through lives in the
// HTTP layer).
type MemoryStore struct {
	mu       sync.RWMutex
	patients []pkg.Patient
}

// NewMemoryStore seeds the store with the given records.
func NewMemoryStore(seed []pkg.Patient) *MemoryStore {
	patients := make([]pkg.Patient, len(seed))
	copy(patients, seed)
	return &MemoryStore{patients: patients}
}

// Snapshot returns a copy of the current patient list in insertion order.
func (s *MemoryStore) Snapshot() []pkg.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]pkg.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// Get looks a patient up by id.
func (s *MemoryStore) Get(id string) (pkg.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return pkg.Patient{}, false
}

// Add appends a patient, assigning an id when none is supplied, and returns
// the stored record.
func (s *MemoryStore) Add(p pkg.Patient) pkg.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = pkg.StatusStable
	}
	s.patients = append(s.patients, p)
	return p
}
