package services

import (
	"sync"

	"github.com/google/uuid"
)

// ReunionLocker serializes mutations per reunion. Upserts, removals and sync
// batches against the same reunion take the same lock, so a sync always
// observes the result of any edit issued before it; mutations on different
// reunions proceed independently.
type ReunionLocker struct {
	locks sync.Map
}

func NewReunionLocker() *ReunionLocker {
	return &ReunionLocker{}
}

func (l *ReunionLocker) Lock(reunionID uuid.UUID) {
	mu, _ := l.locks.LoadOrStore(reunionID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (l *ReunionLocker) Unlock(reunionID uuid.UUID) {
	if mu, ok := l.locks.Load(reunionID); ok {
		mu.(*sync.Mutex).Unlock()
	}
}
