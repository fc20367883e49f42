package notes

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wardview/pkg"
)

// Store persists free-text notes per patient id. Notes are the only patient
// data that outlives the running session, so the canonical implementation is
// the Redis-backed one; MemoryStore covers local runs without Redis.
type Store interface {
	Append(ctx context.Context, patientID, text string) (pkg.Note, error)
	List(ctx context.Context, patientID string) ([]pkg.Note, error)
}

// MemoryStore keeps notes in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[string][]pkg.Note
}

// NewMemoryStore constructs an empty in-memory note store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notes: map[string][]pkg.Note{}}
}

// Append implements Store.
func (s *MemoryStore) Append(_ context.Context, patientID, text string) (pkg.Note, error) {
	note := newNote(patientID, text)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[patientID] = append(s.notes[patientID], note)
	return note, nil
}

// List implements Store. Notes come back in append order.
func (s *MemoryStore) List(_ context.Context, patientID string) ([]pkg.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]pkg.Note, len(s.notes[patientID]))
	copy(out, s.notes[patientID])
	return out, nil
}

func newNote(patientID, text string) pkg.Note {
	return pkg.Note{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
