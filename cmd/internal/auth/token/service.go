package token

import (
	"context"
	"strings"

	"lineage/cmd/identity"
)

// minSeedLen is the shortest caller-supplied token accepted verbatim as a
// create seed. Anything shorter falls back to identity-derived issuance.
const minSeedLen = 4

// Request describes one lifecycle call as delivered by the transport.
type Request struct {
	Type     string
	Token    string
	Username string
	AppName  string
}

// Service validates lifecycle requests, prepares seeds, and delegates to the
// store. Token sign-in sessions are not involved; token management
// authenticates through the tokens themselves.
type Service struct {
	store    Store
	resolver identity.Resolver
}

// NewService constructs a Service.
func NewService(store Store, resolver identity.Resolver) *Service {
	return &Service{store: store, resolver: resolver}
}

// Do validates req, prepares the seed, and calls token_request.
//
// The operation is validated before anything else; renew/delete require a
// caller token passed through unchanged; create derives the "<identity_id>:"
// sentinel when no usable token is supplied. Caller-supplied create tokens of
// at least minSeedLen characters are forwarded without further validation:
// the store is trusted for uniqueness and character set.
func (s *Service) Do(ctx context.Context, req Request) (Record, error) {
	op, ok := ParseOperation(req.Type)
	if !ok {
		return Record{}, ErrInvalidRequest
	}

	seed := req.Token

	switch op {
	case OpRenew, OpDelete:
		if req.Token == "" {
			return Record{}, ErrInvalidRequest
		}
	case OpCreate:
		if len(req.Token) < minSeedLen {
			if strings.TrimSpace(req.Username) == "" {
				return Record{}, ErrNoSeed
			}
			identityID, err := s.resolver.Resolve(ctx, req.Username)
			if err != nil {
				return Record{}, err
			}
			seed = identityID + ":"
		}
	}

	return s.store.RequestToken(ctx, seed, op, req.AppName)
}
