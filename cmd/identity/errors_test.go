package identity

import (
	"errors"
	"testing"
)

func TestOpErrorKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		kind error
	}{
		{OpError{Op: "identity.Resolve", Kind: ErrNotFound, Msg: "unknown username"}, ErrNotFound},
		{OpError{Op: "identity.Resolve", Kind: ErrInvalidInput}, ErrInvalidInput},
		{OpError{Op: "identity.VerifySignIn", Kind: ErrStore, Msg: "boom"}, ErrStore},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, tc.kind) {
			t.Fatalf("errors.Is(%v, %v) = false", tc.err, tc.kind)
		}
	}

	if !IsNotFound(OpError{Op: "x", Kind: ErrNotFound}) {
		t.Fatalf("IsNotFound should match OpError with ErrNotFound kind")
	}
	if IsNotFound(OpError{Op: "x", Kind: ErrStore}) {
		t.Fatalf("IsNotFound must not match ErrStore kind")
	}
	if !IsStoreFailure(OpError{Op: "x", Kind: ErrStore}) {
		t.Fatalf("IsStoreFailure should match OpError with ErrStore kind")
	}
}

func TestOpErrorMessage(t *testing.T) {
	t.Parallel()

	e := OpError{Op: "identity.Resolve", Kind: ErrNotFound, Msg: "unknown username"}
	want := "identity.Resolve: not_found: unknown username"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}

	short := OpError{Op: "identity.Resolve", Kind: ErrNotFound}
	if short.Error() != "identity.Resolve: not_found" {
		t.Fatalf("Error() = %q", short.Error())
	}
}
