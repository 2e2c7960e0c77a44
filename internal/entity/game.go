package entity

import "github.com/google/uuid"

// Game ties a board snapshot to its identifier. Only the latest snapshot is
// kept; the store owns the authoritative copy.
type Game struct {
	ID    uuid.UUID `json:"uuid"`
	Board Board     `json:"board"`
}
