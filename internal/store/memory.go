package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"nightnurse/pkg/types"
)

// InMemoryParents mirrors ParentRepository's observable semantics without a
// database. Used by tests and anywhere a throwaway store is handy.
type InMemoryParents struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]*types.Parent
}

func NewInMemoryParents() *InMemoryParents {
	return &InMemoryParents{nextID: 1, records: make(map[string]*types.Parent)}
}

func (m *InMemoryParents) Upsert(_ context.Context, parent *types.Parent) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	existing, ok := m.records[parent.Email]
	if !ok {
		parent.ID = m.nextID
		m.nextID++
		parent.CreatedAt = now
		parent.UpdatedAt = now
		stored := *parent
		m.records[parent.Email] = &stored
		return false, nil
	}

	existing.FullName = parent.FullName
	existing.Phone = parent.Phone
	existing.BabyTiming = parent.BabyTiming
	existing.StartTimeframe = parent.StartTimeframe
	existing.Notes = parent.Notes
	existing.UpdatesOptIn = parent.UpdatesOptIn
	existing.UpdatedAt = now

	parent.ID = existing.ID
	parent.CreatedAt = existing.CreatedAt
	parent.UpdatedAt = now
	return true, nil
}

func (m *InMemoryParents) All(_ context.Context) ([]*types.Parent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Parent, 0, len(m.records))
	for _, p := range m.records {
		cp := *p
		out = append(out, &cp)
	}
	sortNewestFirst(out, func(p *types.Parent) (time.Time, int64) { return p.CreatedAt, p.ID })
	return out, nil
}

func (m *InMemoryParents) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

// InMemoryCaregivers is the caregiver twin of InMemoryParents.
type InMemoryCaregivers struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]*types.Caregiver
}

func NewInMemoryCaregivers() *InMemoryCaregivers {
	return &InMemoryCaregivers{nextID: 1, records: make(map[string]*types.Caregiver)}
}

func (m *InMemoryCaregivers) Upsert(_ context.Context, caregiver *types.Caregiver) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	existing, ok := m.records[caregiver.Email]
	if !ok {
		caregiver.ID = m.nextID
		m.nextID++
		caregiver.CreatedAt = now
		caregiver.UpdatedAt = now
		stored := *caregiver
		m.records[caregiver.Email] = &stored
		return false, nil
	}

	existing.FullName = caregiver.FullName
	existing.Phone = caregiver.Phone
	existing.Certs = caregiver.Certs
	existing.YearsExperience = caregiver.YearsExperience
	existing.Availability = caregiver.Availability
	existing.Notes = caregiver.Notes
	existing.UpdatesOptIn = caregiver.UpdatesOptIn
	existing.UpdatedAt = now

	caregiver.ID = existing.ID
	caregiver.CreatedAt = existing.CreatedAt
	caregiver.UpdatedAt = now
	return true, nil
}

func (m *InMemoryCaregivers) All(_ context.Context) ([]*types.Caregiver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Caregiver, 0, len(m.records))
	for _, c := range m.records {
		cp := *c
		out = append(out, &cp)
	}
	sortNewestFirst(out, func(c *types.Caregiver) (time.Time, int64) { return c.CreatedAt, c.ID })
	return out, nil
}

func (m *InMemoryCaregivers) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

func sortNewestFirst[T any](records []T, key func(T) (time.Time, int64)) {
	sort.Slice(records, func(i, j int) bool {
		ti, idi := key(records[i])
		tj, idj := key(records[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}
