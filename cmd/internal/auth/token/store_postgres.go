package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore calls the token_request procedure.
//
// The pool is owned by the caller; this store must NOT close it. Failed calls
// surface the Postgres message/hint diagnostics via StoreError.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("token: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

// RequestToken delegates one lifecycle call to the store.
func (s *PostgresStore) RequestToken(ctx context.Context, seed string, op Operation, appName string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	var rec Record
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, message, token, renew_token, delete_token, expires
		   FROM token_request($1, $2, $3)`,
		seed, string(op), appName,
	).Scan(&rec.UserID, &rec.Message, &rec.Token, &rec.RenewToken, &rec.DeleteToken, &rec.Expires)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return Record{}, &StoreError{Message: pgErr.Message, Hint: pgErr.Hint}
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, &StoreError{Message: "token request returned no rows"}
		}
		return Record{}, &StoreError{Message: "token request failed"}
	}

	return rec, nil
}
