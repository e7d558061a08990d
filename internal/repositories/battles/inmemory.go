package battles

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []*Record
	// maxRecords drops the oldest records once exceeded; zero keeps everything
	maxRecords int
}

// NewInMemory creates a new in-memory repository
func NewInMemory(maxRecords int) *InMemoryRepository {
	return &InMemoryRepository{
		maxRecords: maxRecords,
	}
}

// Record stores a battle
func (r *InMemoryRepository) Record(_ context.Context, input *RecordInput) (*RecordOutput, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}

	stored := cloneRecord(input.Record)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, stored)
	sort.SliceStable(r.records, func(i, j int) bool {
		return r.records[i].CreatedAt.Before(r.records[j].CreatedAt)
	})
	if r.maxRecords > 0 && len(r.records) > r.maxRecords {
		r.records = r.records[len(r.records)-r.maxRecords:]
	}

	return &RecordOutput{Record: cloneRecord(stored)}, nil
}

// List returns stored battles newest first
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	limit := listLimit(input)

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, min(limit, len(r.records)))
	for i := len(r.records) - 1; i >= 0 && len(records) < limit; i-- {
		// Return a copy to prevent external modification
		records = append(records, cloneRecord(r.records[i]))
	}

	return &ListOutput{Records: records}, nil
}
