package tree

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads tree rows from PostgreSQL. The pool is owned by the
// caller; this store must NOT close it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("tree: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

// ListByOwner returns every tree owned by ownerID.
func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID string) ([]Tree, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, name, data, created_at FROM trees WHERE owner_id = $1`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("tree: list query: %w", err)
	}
	defer rows.Close()

	return collectTrees(rows)
}

// GetByID returns the tree with treeID, if ownerID owns it.
func (s *PostgresStore) GetByID(ctx context.Context, ownerID, treeID string) ([]Tree, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, name, data, created_at FROM trees WHERE owner_id = $1 AND id = $2`,
		ownerID, treeID,
	)
	if err != nil {
		return nil, fmt.Errorf("tree: get query: %w", err)
	}
	defer rows.Close()

	return collectTrees(rows)
}

func collectTrees(rows pgx.Rows) ([]Tree, error) {
	out := make([]Tree, 0, 8)
	for rows.Next() {
		var t Tree
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Data, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("tree: scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tree: rows: %w", err)
	}
	return out, nil
}
