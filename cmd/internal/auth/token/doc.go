// Package token implements the lifecycle of durable API tokens: create,
// renew, and delete.
//
// The store mints and owns the tokens; this package only validates the
// request and prepares the seed handed to the token_request procedure. For
// create requests without a usable caller token, the seed is the sentinel
// "<identity_id>:" form the store reads as "mint a fresh token".
package token
