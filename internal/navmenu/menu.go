// Package navmenu models the collapsible mobile menu of the navigation bar:
// an open/closed toggle plus the expand and collapse transitions it drives.
package navmenu

import (
	"errors"
	"sync/atomic"
	"time"
)

// State is what the user asked for.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Phase is where the menu element is in its animation. It lags State by one
// transition: a menu that was just closed is Collapsing until the collapse
// completes, and only then Hidden.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseExpanding
	PhaseShown
	PhaseCollapsing
)

func (p Phase) String() string {
	switch p {
	case PhaseExpanding:
		return "expanding"
	case PhaseShown:
		return "shown"
	case PhaseCollapsing:
		return "collapsing"
	default:
		return "hidden"
	}
}

// Animation timings.
const (
	ExpandDuration   = 500 * time.Millisecond
	CollapseDuration = 400 * time.Millisecond
	ItemDuration     = 400 * time.Millisecond
	ItemBaseDelay    = 150 * time.Millisecond
	ItemStep         = 100 * time.Millisecond

	// ItemOffsetY is how far below its resting place an item starts, in px.
	ItemOffsetY = 30

	EaseOut = "power2.out"
	EaseIn  = "power2.in"
)

// Item is a menu destination.
type Item struct {
	Label string
	Href  string
}

// DefaultItems are the destinations of the site menu, in display order.
var DefaultItems = []Item{
	{Label: "Home", Href: "/"},
	{Label: "Buy", Href: "/buy"},
	{Label: "Retrieve", Href: "/retrieve"},
}

var ErrUnknownItem = errors.New("unknown menu item")

// Transition describes one animation the menu element should run.
type Transition struct {
	Gen      uint64
	To       Phase
	Duration time.Duration
	Ease     string
	// Items is set only when expanding.
	Items []Staggered[Item]
}

// Settles is the phase the menu reaches when the transition completes.
func (t Transition) Settles() Phase {
	if t.To == PhaseExpanding {
		return PhaseShown
	}
	return PhaseHidden
}

// Generations numbers transitions. Menus drawing from the same Generations
// never reuse a number, so a completion aimed at a discarded menu cannot
// match its replacement.
type Generations struct {
	n atomic.Uint64
}

func (g *Generations) next() uint64 { return g.n.Add(1) }

// Menu is the menu state machine. It is not safe for concurrent use.
type Menu struct {
	items []Item
	gens  *Generations
	state State
	phase Phase
	gen   uint64
}

// New returns a closed, hidden menu listing items, with its own numbering.
func New(items []Item) *Menu {
	return NewShared(items, &Generations{})
}

// NewShared is New with transition numbers drawn from gens.
func NewShared(items []Item, gens *Generations) *Menu {
	return &Menu{items: items, gens: gens}
}

func (m *Menu) State() State       { return m.state }
func (m *Menu) Phase() Phase       { return m.phase }
func (m *Menu) Items() []Item      { return m.items }
func (m *Menu) Generation() uint64 { return m.gen }

// Visible reports whether the menu element is displayed at all. A collapsing
// menu is still displayed until the collapse completes.
func (m *Menu) Visible() bool {
	return m.phase != PhaseHidden
}

// Toggle flips the menu and starts the matching transition. Any transition in
// flight is superseded.
func (m *Menu) Toggle() Transition {
	if m.state == Open {
		return m.collapse()
	}
	return m.expand()
}

// Close collapses the menu. It reports false and does nothing if the menu is
// already closed.
func (m *Menu) Close() (Transition, bool) {
	if m.state == Closed {
		return Transition{}, false
	}
	return m.collapse(), true
}

// Select resolves a destination by label or href and closes the menu.
func (m *Menu) Select(key string) (Item, Transition, bool, error) {
	for _, it := range m.items {
		if it.Label == key || it.Href == key {
			t, started := m.Close()
			return it, t, started, nil
		}
	}
	return Item{}, Transition{}, false, ErrUnknownItem
}

// Complete finishes the transition with generation gen. Completions of
// superseded transitions are ignored and report false.
func (m *Menu) Complete(gen uint64) bool {
	if gen != m.gen {
		return false
	}
	switch m.phase {
	case PhaseExpanding:
		m.phase = PhaseShown
	case PhaseCollapsing:
		m.phase = PhaseHidden
	default:
		return false
	}
	return true
}

func (m *Menu) expand() Transition {
	m.state = Open
	m.phase = PhaseExpanding
	m.gen = m.gens.next()
	return Transition{
		Gen:      m.gen,
		To:       PhaseExpanding,
		Duration: ExpandDuration,
		Ease:     EaseOut,
		Items:    Stagger(m.items, ItemBaseDelay, ItemStep),
	}
}

func (m *Menu) collapse() Transition {
	m.state = Closed
	m.phase = PhaseCollapsing
	m.gen = m.gens.next()
	return Transition{
		Gen:      m.gen,
		To:       PhaseCollapsing,
		Duration: CollapseDuration,
		Ease:     EaseIn,
	}
}
