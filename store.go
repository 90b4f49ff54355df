package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore owns the item collection for the lifetime of the process.
// A single RWMutex serializes mutations against each other and against
// reads, and every item handed out is a private copy, so callers never
// share memory with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Item
	order []string // item ids in insertion order
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Item)}
}

// CreateItem validates the request, assigns a fresh id and timestamps, and
// stores the new item. Both timestamps carry the same instant.
func (s *MemoryStore) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item := &Item{
		ID:        s.newID(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		d := *req.Description
		item.Description = &d
	}

	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return item.clone(), nil
}

// GetItem retrieves an item by ID.
func (s *MemoryStore) GetItem(ctx context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}
	return item.clone(), nil
}

// ListItems returns all items in insertion order. The slice is never nil.
func (s *MemoryStore) ListItems(ctx context.Context) []*Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id].clone())
	}
	return items
}

// UpdateItem applies the non-nil fields of req to the item with the given
// ID and refreshes updated_at, even when no field is supplied. Failures
// leave the item untouched.
func (s *MemoryStore) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		d := *req.Description
		item.Description = &d
	}
	item.UpdatedAt = time.Now().UTC()

	return item.clone(), nil
}

// DeleteItem removes an item by ID. The id stays permanently invalid for
// subsequent reads, updates, and deletes.
func (s *MemoryStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return NewNotFoundError(id)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// newID returns a random UUID unused by any live item, so an existing item
// can never be overwritten. Caller must hold mu.
func (s *MemoryStore) newID() string {
	for {
		id := uuid.NewString()
		if _, exists := s.items[id]; !exists {
			return id
		}
	}
}
