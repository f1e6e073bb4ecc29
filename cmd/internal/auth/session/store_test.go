package session

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreBasics(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	if _, ok := s.Get("alice"); ok {
		t.Fatalf("empty store must not return a session")
	}

	exp := time.Now().UTC().Add(time.Hour)
	s.Put("alice", Session{Hash: "h1", Expires: exp})

	sess, ok := s.Get("alice")
	if !ok || sess.Hash != "h1" || !sess.Expires.Equal(exp) {
		t.Fatalf("unexpected session: %+v ok=%v", sess, ok)
	}

	// Overwrite, not append.
	s.Put("alice", Session{Hash: "h2", Expires: exp})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	sess, _ = s.Get("alice")
	if sess.Hash != "h2" {
		t.Fatalf("expected overwrite, got %q", sess.Hash)
	}

	s.Delete("alice")
	if s.Len() != 0 {
		t.Fatalf("Len after delete = %d, want 0", s.Len())
	}
	// Deleting a missing key is a no-op.
	s.Delete("alice")
}

func TestMemoryStoreConcurrentWrites(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	exp := time.Now().UTC().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Put("alice", Session{Hash: "h", Expires: exp})
			_, _ = s.Get("alice")
		}()
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Fatalf("last write wins: Len = %d, want 1", s.Len())
	}
}
