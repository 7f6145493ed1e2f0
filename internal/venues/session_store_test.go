package venues

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebuilder/internal/seating"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	editor := seating.NewEditor()
	stadium, _, err := editor.AddStand(editor.NewStadium("Ground", "G"), "North")
	if err != nil {
		t.Fatalf("AddStand: %v", err)
	}

	store := NewMemorySessionStore(time.Hour).(*memorySessionStore)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := seating.NewSession("s1", "layout-1", stadium)
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("Put: %v", err)
	}

	t.Run("returns a detached copy", func(t *testing.T) {
		got, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Stadium == session.Stadium {
			t.Fatal("stored session shares its tree with the caller")
		}
		if got.Selection != session.Selection || len(got.Stadium.Stands) != 1 {
			t.Errorf("round trip lost state: %+v", got)
		}
	})

	t.Run("expires after ttl", func(t *testing.T) {
		now = now.Add(2 * time.Hour)
		if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("delete unknown", func(t *testing.T) {
		if err := store.Delete(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestNewSessionStoreFallsBackToMemory(t *testing.T) {
	if _, ok := NewSessionStore(nil, 0).(*memorySessionStore); !ok {
		t.Error("expected the in-memory store without a cache service")
	}
}
