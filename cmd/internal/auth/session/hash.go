package session

import "github.com/google/uuid"

// newHash mints the opaque bearer credential handed out at password sign-in.
// Random V4 UUIDs: not derived from anything the client controls.
func newHash() string {
	return uuid.NewString()
}
