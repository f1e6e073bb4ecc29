package token

import (
	"context"
	"time"
)

// Operation is a validated token lifecycle request type.
type Operation string

const (
	OpCreate Operation = "create"
	OpRenew  Operation = "renew"
	OpDelete Operation = "delete"
)

// ParseOperation validates the wire value of the request "type" field.
func ParseOperation(s string) (Operation, bool) {
	switch op := Operation(s); op {
	case OpCreate, OpRenew, OpDelete:
		return op, true
	default:
		return "", false
	}
}

// Record mirrors the row returned by the token_request procedure.
type Record struct {
	UserID      string    `json:"userID"`
	Message     string    `json:"message"`
	Token       string    `json:"token"`
	RenewToken  string    `json:"renewToken"`
	DeleteToken string    `json:"deleteToken"`
	Expires     time.Time `json:"expires"`
}

// Store is the token persistence boundary (the token_request procedure).
// Token ownership and uniqueness rest entirely with the store.
type Store interface {
	RequestToken(ctx context.Context, seed string, op Operation, appName string) (Record, error)
}
