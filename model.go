package main

import "time"

// Item is the single managed resource: a named entry with an optional
// description and store-assigned identity and timestamps.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// clone returns a copy of the item with its own Description pointer.
func (it *Item) clone() *Item {
	cp := *it
	if it.Description != nil {
		d := *it.Description
		cp.Description = &d
	}
	return &cp
}

// CreateItemRequest is the payload for creating a new item.
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateItemRequest is the payload for updating an existing item.
// Nil fields are left unchanged; a body with no fields at all is a valid
// no-op update that only refreshes updated_at.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// HealthResponse is the payload served by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
