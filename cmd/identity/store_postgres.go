package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements identity operations over PostgreSQL.
//
// Design notes:
// - The pgx pool is owned by the caller; this store must NOT close it.
// - get_uuid and validate_sign_in are stored procedures owned by the DB team;
//   this store only shapes their inputs and outputs.
// - Errors are mapped to identity sentinel kinds where appropriate.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("identity: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

// Resolve maps a username to its identity id via get_uuid.
//
// Missing rows and query failures both collapse into ErrNotFound: the caller
// must treat them as "unknown user" regardless of underlying cause.
func (s *PostgresStore) Resolve(ctx context.Context, username string) (string, error) {
	const op = "identity.Resolve"

	if s == nil || s.pool == nil {
		return "", OpError{Op: op, Kind: ErrInvalidInput, Msg: "nil store"}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(username) == "" {
		return "", OpError{Op: op, Kind: ErrInvalidInput, Msg: "empty username"}
	}

	var uuid string
	err := s.pool.QueryRow(ctx, `SELECT uuid FROM get_uuid($1)`, username).Scan(&uuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", OpError{Op: op, Kind: ErrNotFound, Msg: "unknown username"}
		}
		return "", OpError{Op: op, Kind: ErrNotFound, Msg: "uuid lookup failed"}
	}
	if uuid == "" {
		return "", OpError{Op: op, Kind: ErrNotFound, Msg: "unknown username"}
	}

	return uuid, nil
}

// VerifySignIn relays the validate_sign_in verdict for an identity id.
func (s *PostgresStore) VerifySignIn(ctx context.Context, identityID, password string) (bool, error) {
	const op = "identity.VerifySignIn"

	if s == nil || s.pool == nil {
		return false, OpError{Op: op, Kind: ErrInvalidInput, Msg: "nil store"}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if identityID == "" {
		return false, OpError{Op: op, Kind: ErrInvalidInput, Msg: "empty identity id"}
	}

	var success bool
	err := s.pool.QueryRow(ctx, `SELECT * FROM validate_sign_in($1, $2)`, identityID, password).Scan(&success)
	if err != nil {
		return false, OpError{Op: op, Kind: ErrStore, Msg: "validate_sign_in failed"}
	}

	return success, nil
}

// CreateAccount inserts a new user row.
//
// Uniqueness conflicts and other store failures are deliberately not told
// apart; both surface as ErrStore and the API reports them identically.
func (s *PostgresStore) CreateAccount(ctx context.Context, in CreateAccountInput) error {
	const op = "identity.CreateAccount"

	if s == nil || s.pool == nil {
		return OpError{Op: op, Kind: ErrInvalidInput, Msg: "nil store"}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return OpError{Op: op, Kind: ErrInvalidInput, Msg: "username, email and password are required"}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3)`,
		in.Username, in.Email, in.Password,
	)
	if err != nil {
		return OpError{Op: op, Kind: ErrStore, Msg: "insert failed"}
	}

	return nil
}
