package visitors

import (
	"context"
	"sync"
	"testing"
	"time"

	"checkershub.com/checkers/internal/checker"
	"checkershub.com/checkers/internal/navmenu"
	"github.com/stretchr/testify/require"
)

func newTestHub(maxVisitors int) (*Hub, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewHub(checker.NewLocalDesk(), 30*time.Minute, maxVisitors)
	h.now = func() time.Time { return now }
	return h, &now
}

func TestHub_StateIsPerVisitor(t *testing.T) {
	t.Parallel()

	h, _ := newTestHub(10)

	require.NoError(t, h.With("a", func(s *State) {
		s.Panel.OpenBuy()
		s.Menu.Toggle()
	}))

	require.NoError(t, h.With("b", func(s *State) {
		require.Equal(t, checker.ModalClosed, s.Panel.Modal())
		require.Equal(t, navmenu.Closed, s.Menu.State())
	}))

	require.NoError(t, h.With("a", func(s *State) {
		require.Equal(t, checker.ModalBuy, s.Panel.Modal())
		require.Equal(t, navmenu.Open, s.Menu.State())
	}))

	require.Equal(t, 2, h.Len())
}

func TestHub_ResetStartsOver(t *testing.T) {
	t.Parallel()

	h, _ := newTestHub(10)
	require.NoError(t, h.With("a", func(s *State) {
		s.Panel.OpenRetrieve()
		s.Panel.UpdateRetrieveDraft(checker.RetrievalRequestDraft{PhoneNumber: "0551234567"})
	}))

	require.NoError(t, h.Reset("a", func(s *State) {
		require.Equal(t, checker.ModalClosed, s.Panel.Modal())
		require.Empty(t, s.Panel.RetrieveDraft().PhoneNumber)
	}))
	require.Equal(t, 1, h.Len())
}

func TestHub_Full(t *testing.T) {
	t.Parallel()

	h, _ := newTestHub(1)
	require.NoError(t, h.With("a", func(*State) {}))
	require.ErrorIs(t, h.With("b", func(*State) {}), ErrHubFull)

	// Known visitors are still served.
	require.NoError(t, h.With("a", func(*State) {}))
}

func TestHub_PruneStale(t *testing.T) {
	t.Parallel()

	h, now := newTestHub(10)
	require.NoError(t, h.With("old", func(*State) {}))

	*now = now.Add(20 * time.Minute)
	require.NoError(t, h.With("fresh", func(*State) {}))

	removed := h.PruneStale(now.Add(15 * time.Minute))
	require.Equal(t, 1, removed)
	require.Equal(t, 1, h.Len())

	require.NoError(t, h.With("fresh", func(s *State) {
		require.NotNil(t, s.Panel)
	}))
}

func TestHub_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	h := NewHub(checker.NewLocalDesk(), time.Hour, 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.With("shared", func(s *State) {
				s.Menu.Toggle()
			})
		}()
	}
	wg.Wait()

	require.NoError(t, h.With("shared", func(s *State) {
		// 50 toggles from closed end closed.
		require.Equal(t, navmenu.Closed, s.Menu.State())
		require.Equal(t, uint64(50), s.Menu.Generation())
	}))
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	h, _ := newTestHub(10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHub_ResetMenuIgnoresOldCompletion(t *testing.T) {
	t.Parallel()

	h, _ := newTestHub(10)

	var collapse navmenu.Transition
	require.NoError(t, h.With("v", func(s *State) {
		s.Menu.Toggle()
		collapse = s.Menu.Toggle()
	}))

	var open navmenu.Transition
	require.NoError(t, h.Reset("v", func(s *State) {
		open = s.Menu.Toggle()
	}))
	require.NoError(t, h.With("v", func(s *State) {
		s.Menu.Toggle()
	}))

	// The stream that started the old collapse finishes late.
	require.NoError(t, h.With("v", func(s *State) {
		require.False(t, s.Menu.Complete(collapse.Gen))
		require.False(t, s.Menu.Complete(open.Gen))
		require.Equal(t, navmenu.PhaseCollapsing, s.Menu.Phase())
	}))
}
