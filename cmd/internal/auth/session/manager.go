package session

import (
	"context"
	"time"

	"lineage/cmd/identity"
)

// Manager implements the high-level session operations.
//
// It issues sessions at password sign-in, renews them at token sign-in, and
// validates them (read-only) for resource access. The renewal asymmetry is
// deliberate: explicit re-authentication slides the window, ordinary API
// calls do not keep a session alive.
type Manager struct {
	cfg      Config
	store    Store
	resolver identity.Resolver
	creds    identity.CredentialVerifier
}

// NewManager constructs a Manager with the provided configuration, store,
// resolver, and credential verifier.
func NewManager(cfg Config, store Store, resolver identity.Resolver, creds identity.CredentialVerifier) *Manager {
	return &Manager{cfg: cfg, store: store, resolver: resolver, creds: creds}
}

// SignInWithPassword verifies credentials against the store and installs a
// fresh session, overwriting any prior session for the username.
//
// Failure modes: ErrUserNotFound when the username does not resolve,
// ErrInvalidCredentials on a password mismatch; store failures pass through.
func (m *Manager) SignInWithPassword(ctx context.Context, now time.Time, username, password string) (string, error) {
	identityID, err := m.resolver.Resolve(ctx, username)
	if err != nil {
		if identity.IsNotFound(err) || identity.IsInvalidInput(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	ok, err := m.creds.VerifySignIn(ctx, identityID, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	hash := newHash()
	m.store.Put(username, Session{Hash: hash, Expires: now.Add(m.cfg.TTL)})

	return hash, nil
}

// SignInWithToken re-authenticates from local session state only; no store
// round trip. Success extends the expiry window in place, hash unchanged.
func (m *Manager) SignInWithToken(now time.Time, username, token string) (string, error) {
	sess, err := m.check(now, username, token)
	if err != nil {
		return "", err
	}

	m.store.Put(username, Session{Hash: sess.Hash, Expires: now.Add(m.cfg.TTL)})

	return sess.Hash, nil
}

// Validate checks the session without extending it, then resolves the
// identity id needed for ownership-scoped queries. Downstream queries key on
// identity id, not username, so resolution is required here.
func (m *Manager) Validate(ctx context.Context, now time.Time, username, token string) (string, error) {
	if _, err := m.check(now, username, token); err != nil {
		return "", err
	}

	identityID, err := m.resolver.Resolve(ctx, username)
	if err != nil {
		if identity.IsNotFound(err) || identity.IsInvalidInput(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return identityID, nil
}

// check applies the shared absent/expired/mismatch rules. Expired sessions
// are evicted on first sight; a hash mismatch leaves the session untouched
// since a mismatch does not imply expiry.
func (m *Manager) check(now time.Time, username, token string) (Session, error) {
	sess, ok := m.store.Get(username)
	if !ok {
		return Session{}, ErrTokenInvalid
	}
	if sess.Expires.Before(now) {
		m.store.Delete(username)
		return Session{}, ErrTokenInvalid
	}
	if sess.Hash != token {
		return Session{}, ErrInvalidCredentials
	}
	return sess, nil
}
