package repository

import (
	"sync"

	"rate-normalizer/domain"
)

// QuarantineRepositoryMemory is an in-memory implementation of QuarantineRepository.
type QuarantineRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.RejectedRecord
}

// NewQuarantineRepositoryMemory creates a new in-memory quarantine repository.
func NewQuarantineRepositoryMemory() *QuarantineRepositoryMemory {
	return &QuarantineRepositoryMemory{
		data: []domain.RejectedRecord{},
	}
}

// Save stores the rejected record in memory.
func (r *QuarantineRepositoryMemory) Save(record domain.RejectedRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// List returns a snapshot of the quarantined records in arrival order.
func (r *QuarantineRepositoryMemory) List() []domain.RejectedRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.RejectedRecord, len(r.data))
	copy(out, r.data)
	return out
}
