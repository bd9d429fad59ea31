package visitors

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"checkershub.com/checkers/internal/checker"
	"checkershub.com/checkers/internal/metrics"
	"checkershub.com/checkers/internal/navmenu"
)

const (
	// How often the background loop looks for idle visitors.
	pruneInterval = time.Minute
)

var ErrHubFull = errors.New("visitor hub is full")

// State is the UI state a single visitor owns: the action panel and the
// navigation menu. Each visitor's state is independent of every other.
type State struct {
	Panel *checker.Panel
	Menu  *navmenu.Menu
}

type entry struct {
	mu    sync.Mutex
	state State
}

// Hub keeps per-visitor UI state in memory, keyed by visitor ID.
type Hub struct {
	mu sync.Mutex

	visitors map[string]*entry
	lastSeen map[string]time.Time

	desk        checker.Fulfillment
	items       []navmenu.Item
	gens        navmenu.Generations
	idleAfter   time.Duration
	maxVisitors int
	now         func() time.Time
}

// NewHub creates a hub whose panels submit to desk. Visitors untouched for
// idleAfter are dropped; at most maxVisitors are tracked.
func NewHub(desk checker.Fulfillment, idleAfter time.Duration, maxVisitors int) *Hub {
	return &Hub{
		visitors:    make(map[string]*entry),
		lastSeen:    make(map[string]time.Time),
		desk:        desk,
		items:       navmenu.DefaultItems,
		idleAfter:   idleAfter,
		maxVisitors: maxVisitors,
		now:         time.Now,
	}
}

// With runs fn with exclusive access to the visitor's state, creating it on
// first use. Different visitors never wait on each other.
func (h *Hub) With(id string, fn func(*State)) error {
	e, err := h.entry(id, false)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
	return nil
}

// Reset discards the visitor's state and starts over, as a fresh page load
// does, then runs fn on the new state.
func (h *Hub) Reset(id string, fn func(*State)) error {
	e, err := h.entry(id, true)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
	return nil
}

func (h *Hub) entry(id string, fresh bool) (*entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.visitors[id]
	if !ok && len(h.visitors) >= h.maxVisitors {
		return nil, ErrHubFull
	}
	if !ok || fresh {
		e = &entry{
			state: State{
				Panel: checker.NewPanel(h.desk),
				Menu:  navmenu.NewShared(h.items, &h.gens),
			},
		}
		h.visitors[id] = e
		metrics.Visitors.Set(float64(len(h.visitors)))
	}
	h.lastSeen[id] = h.now()
	return e, nil
}

// Len returns the number of tracked visitors.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.visitors)
}

// PruneStale removes visitors that haven't been seen within the idle window.
func (h *Hub) PruneStale(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, seen := range h.lastSeen {
		if now.Sub(seen) <= h.idleAfter {
			continue
		}
		delete(h.visitors, id)
		delete(h.lastSeen, id)
		removed++
	}
	metrics.Visitors.Set(float64(len(h.visitors)))
	return removed
}

// Run prunes idle visitors until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := h.PruneStale(h.now()); n > 0 {
				slog.Info("pruned idle visitors", "removed", n, "remaining", h.Len())
			}
		}
	}
}
