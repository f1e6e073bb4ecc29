// Package session implements ephemeral sign-in sessions: a process-wide
// in-memory store keyed by username and a manager that issues, renews, and
// validates sessions under a sliding-expiration policy.
//
// Sessions are deliberately single-node state. There is no replication and no
// background sweep; expired entries are evicted lazily on first access.
package session
