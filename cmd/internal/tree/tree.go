// Package tree exposes read access to the hierarchical tree records owned by
// an identity. Queries are always ownership-scoped by identity id.
package tree

import (
	"context"
	"encoding/json"
	"time"
)

// Tree is one hierarchical record.
type Tree struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerID"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Store is the read-only tree query boundary.
//
// GetByID returns a slice to keep the wire shape uniform with ListByOwner:
// zero rows is an empty result, not an error.
type Store interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Tree, error)
	GetByID(ctx context.Context, ownerID, treeID string) ([]Tree, error)
}
