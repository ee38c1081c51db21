package discovered

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/monster-codex/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Entry
}

// NewInMemory creates a new in-memory repository. A nil clock uses wall time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Entry),
	}
}

// Save stores a discovery
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.store {
		if e.Monster.Name == input.Monster.Name && id != input.Monster.MonsterID {
			delete(r.store, id)
		}
	}

	entry := &Entry{
		Monster:      input.Monster.Clone(),
		Query:        input.Query,
		DiscoveredAt: r.clock.Now(),
	}
	r.store[input.Monster.MonsterID] = entry

	return &SaveOutput{Entry: copyEntry(entry)}, nil
}

// Get retrieves a discovery by id or name
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.store[input.Key]; ok {
		return &GetOutput{Entry: copyEntry(e)}, nil
	}
	for _, e := range r.store {
		if e.Monster.Name == input.Key {
			return &GetOutput{Entry: copyEntry(e)}, nil
		}
	}

	return nil, notFound(input.Key)
}

// List returns discoveries newest first
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	entries := make([]*Entry, 0, len(r.store))
	for _, e := range r.store {
		entries = append(entries, copyEntry(e))
	}
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DiscoveredAt.Equal(entries[j].DiscoveredAt) {
			return entries[i].Monster.MonsterID < entries[j].Monster.MonsterID
		}
		return entries[i].DiscoveredAt.After(entries[j].DiscoveredAt)
	})

	if limit := listLimit(input); len(entries) > limit {
		entries = entries[:limit]
	}

	return &ListOutput{Entries: entries}, nil
}

func copyEntry(e *Entry) *Entry {
	return &Entry{
		Monster:      e.Monster.Clone(),
		Query:        e.Query,
		DiscoveredAt: e.DiscoveredAt,
	}
}
