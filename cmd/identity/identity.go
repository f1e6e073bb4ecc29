package identity

import "context"

// Resolver maps a public username to the opaque identity id the store keys
// accounts by.
//
// Contract: store errors and missing rows are both surfaced as ErrNotFound so
// callers cannot tell "unknown user" apart from a failed lookup.
type Resolver interface {
	Resolve(ctx context.Context, username string) (string, error)
}

// CredentialVerifier checks a password for an already-resolved identity.
// The comparison itself happens inside the store's validate_sign_in
// procedure; this layer only relays its boolean verdict.
type CredentialVerifier interface {
	VerifySignIn(ctx context.Context, identityID, password string) (bool, error)
}

// CreateAccountInput describes a signup request. All fields are required and
// must be non-empty.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountCreator inserts a new user row.
type AccountCreator interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) error
}

// Store bundles the identity-facing store operations.
type Store interface {
	Resolver
	CredentialVerifier
	AccountCreator
}
